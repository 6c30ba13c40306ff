package agent

import (
	"regexp"
	"strconv"
	"strings"
)

// patterns are tried in order; the first match wins. "show booking 7" must
// resolve to a single-booking lookup even though the multi-booking pattern
// would also accept it, so the single form comes first.
var patterns = []struct {
	intent Intent
	re     *regexp.Regexp
}{
	{IntentExplainBooking, regexp.MustCompile(`(?i)(?:show|explain|calculate|get)\s+(?:booking|price)\s+(?:for\s+)?(?:id\s+)?(\d+)`)},
	{IntentUserBookings, regexp.MustCompile(`(?i)(?:show|get|find)\s+(?:me\s+)?(?:all\s+)?bookings?\s+(?:for|under|of)\s+(?:user\s+)?["']?(\w+)["']?`)},
	{IntentUserTotal, regexp.MustCompile(`(?i)(?:total|sum)\s+(?:price|cost)\s+(?:for|of|under)\s+(?:user\s+)?["']?(\w+)["']?`)},
	{IntentMultipleBookings, regexp.MustCompile(`(?i)(?:show|explain)\s+bookings?\s+(\d+(?:\s*,\s*\d+)*)`)},
	{IntentBookingOwner, regexp.MustCompile(`(?i)(?:who|which\s+user|owner)\s+(?:owns|has|booked)\s+booking\s+(\d+)`)},
	{IntentAllBookings, regexp.MustCompile(`(?i)(?:show|list)\s+(?:all\s+)?(?:bookings?|system\s+bookings?)`)},
	{IntentHelp, regexp.MustCompile(`(?i)(?:help|what\s+can\s+you\s+do|commands)`)},
}

// Parse turns a free-text line into a typed Command. Unknown input parses to
// IntentUnknown rather than an error; the executor answers it with help text.
func Parse(input string) Command {
	input = strings.TrimSpace(input)

	for _, p := range patterns {
		match := p.re.FindStringSubmatch(input)
		if match == nil {
			continue
		}

		cmd := Command{Intent: p.intent}
		switch p.intent {
		case IntentExplainBooking, IntentBookingOwner:
			id, err := strconv.ParseUint(match[1], 10, 32)
			if err != nil {
				continue
			}
			cmd.BookingID = uint(id)

		case IntentUserBookings, IntentUserTotal:
			cmd.Username = match[1]

		case IntentMultipleBookings:
			for _, part := range strings.Split(match[1], ",") {
				id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
				if err != nil {
					continue
				}
				cmd.BookingIDs = append(cmd.BookingIDs, uint(id))
			}
			if len(cmd.BookingIDs) == 0 {
				continue
			}
		}

		return cmd
	}

	return Command{Intent: IntentUnknown}
}
