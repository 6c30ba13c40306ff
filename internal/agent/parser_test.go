package agent

import (
	"reflect"
	"testing"
)

func TestParseSingleBooking(t *testing.T) {
	inputs := []string{
		"show booking 1",
		"explain booking 1",
		"get booking 1",
		"calculate price for 1",
		"explain booking for id 1",
		"SHOW BOOKING 1",
	}

	for _, input := range inputs {
		cmd := Parse(input)
		if cmd.Intent != IntentExplainBooking {
			t.Errorf("Parse(%q).Intent = %v, want %v", input, cmd.Intent, IntentExplainBooking)
		}
		if cmd.BookingID != 1 {
			t.Errorf("Parse(%q).BookingID = %d, want 1", input, cmd.BookingID)
		}
	}
}

func TestParseUserBookings(t *testing.T) {
	tests := []struct {
		input    string
		username string
	}{
		{"show me all bookings under nikitha", "nikitha"},
		{"find bookings of john", "john"},
		{"show bookings for anna", "anna"},
		{"get bookings for user Anna", "Anna"},
	}

	for _, tt := range tests {
		cmd := Parse(tt.input)
		if cmd.Intent != IntentUserBookings {
			t.Errorf("Parse(%q).Intent = %v, want %v", tt.input, cmd.Intent, IntentUserBookings)
			continue
		}
		if cmd.Username != tt.username {
			t.Errorf("Parse(%q).Username = %q, want %q", tt.input, cmd.Username, tt.username)
		}
	}
}

func TestParsePreservesUsernameCase(t *testing.T) {
	cmd := Parse("TOTAL PRICE FOR USER McTavish")
	if cmd.Intent != IntentUserTotal {
		t.Fatalf("intent = %v, want %v", cmd.Intent, IntentUserTotal)
	}
	if cmd.Username != "McTavish" {
		t.Errorf("username = %q, want %q", cmd.Username, "McTavish")
	}
}

func TestParseUserTotal(t *testing.T) {
	tests := []string{
		"total price for user nikitha",
		"sum cost of nikitha",
		"total price under nikitha",
	}

	for _, input := range tests {
		cmd := Parse(input)
		if cmd.Intent != IntentUserTotal {
			t.Errorf("Parse(%q).Intent = %v, want %v", input, cmd.Intent, IntentUserTotal)
		}
		if cmd.Username != "nikitha" {
			t.Errorf("Parse(%q).Username = %q, want nikitha", input, cmd.Username)
		}
	}
}

func TestParseMultipleBookings(t *testing.T) {
	cmd := Parse("show bookings 1, 2, 3")
	if cmd.Intent != IntentMultipleBookings {
		t.Fatalf("intent = %v, want %v", cmd.Intent, IntentMultipleBookings)
	}
	if !reflect.DeepEqual(cmd.BookingIDs, []uint{1, 2, 3}) {
		t.Errorf("booking ids = %v, want [1 2 3]", cmd.BookingIDs)
	}
}

func TestParseSingleBeatsMultiple(t *testing.T) {
	// "show booking 7" matches both the single and multi patterns;
	// the single form must win.
	cmd := Parse("show booking 7")
	if cmd.Intent != IntentExplainBooking {
		t.Errorf("intent = %v, want %v", cmd.Intent, IntentExplainBooking)
	}
}

func TestParseBookingOwner(t *testing.T) {
	tests := []string{
		"who owns booking 4",
		"which user has booking 4",
		"who booked booking 4",
	}

	for _, input := range tests {
		cmd := Parse(input)
		if cmd.Intent != IntentBookingOwner {
			t.Errorf("Parse(%q).Intent = %v, want %v", input, cmd.Intent, IntentBookingOwner)
		}
		if cmd.BookingID != 4 {
			t.Errorf("Parse(%q).BookingID = %d, want 4", input, cmd.BookingID)
		}
	}
}

func TestParseAllBookings(t *testing.T) {
	tests := []string{
		"show all bookings",
		"list all bookings",
		"list bookings",
	}

	for _, input := range tests {
		cmd := Parse(input)
		if cmd.Intent != IntentAllBookings {
			t.Errorf("Parse(%q).Intent = %v, want %v", input, cmd.Intent, IntentAllBookings)
		}
	}
}

func TestParseHelp(t *testing.T) {
	tests := []string{
		"help",
		"what can you do",
		"commands",
	}

	for _, input := range tests {
		cmd := Parse(input)
		if cmd.Intent != IntentHelp {
			t.Errorf("Parse(%q).Intent = %v, want %v", input, cmd.Intent, IntentHelp)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	tests := []string{
		"",
		"book me a flight to mars",
		"delete everything",
	}

	for _, input := range tests {
		cmd := Parse(input)
		if cmd.Intent != IntentUnknown {
			t.Errorf("Parse(%q).Intent = %v, want %v", input, cmd.Intent, IntentUnknown)
		}
	}
}
