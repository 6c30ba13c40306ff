package agent

// Intent is the closed set of commands the agent understands. Free text is
// parsed into one of these; nothing outside the set is ever executed.
type Intent string

const (
	IntentExplainBooking   Intent = "booking_by_id"
	IntentUserBookings     Intent = "booking_by_user"
	IntentUserTotal        Intent = "user_total"
	IntentMultipleBookings Intent = "multiple_bookings"
	IntentBookingOwner     Intent = "booking_owner"
	IntentAllBookings      Intent = "all_bookings"
	IntentHelp             Intent = "help"
	IntentUnknown          Intent = "unknown"
)

// Command is a parsed agent command with its extracted parameters.
type Command struct {
	Intent     Intent `json:"intent"`
	BookingID  uint   `json:"booking_id,omitempty"`
	BookingIDs []uint `json:"booking_ids,omitempty"`
	Username   string `json:"username,omitempty"`
}

// CommandRequest is the POST /agent/command payload
type CommandRequest struct {
	Command string `json:"command" validate:"required,min=1,max=500"`
}

// CommandResponse wraps whatever the executed command produced, together
// with the parsed command so callers can see how their text was understood.
type CommandResponse struct {
	Parsed Command     `json:"parsed"`
	Result interface{} `json:"result"`
}
