package store

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DayHours is the opening window for a single weekday. If Closed is false,
// Open and Close hold well-formed 24-hour "HH:mm" times.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// HoursOfOperation is the fixed weekly schedule of a store.
type HoursOfOperation struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// AllClosed returns a schedule with every day marked closed. Absent hours data
// is represented this way rather than as an error.
func AllClosed() HoursOfOperation {
	closed := DayHours{Closed: true}
	return HoursOfOperation{
		Monday:    closed,
		Tuesday:   closed,
		Wednesday: closed,
		Thursday:  closed,
		Friday:    closed,
		Saturday:  closed,
		Sunday:    closed,
	}
}

var (
	rangeSplitPattern = regexp.MustCompile(`(?i)[-–]|to`)
	timePattern       = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(AM|PM)?$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ParseWeeklyHours parses a JSON blob of free-form weekly hours, e.g.
// {"Monday": "9AM-5PM", "Tuesday": "Closed", ...}, into a structured schedule.
// Malformed input never fails: an unparseable blob yields a fully closed week,
// and an unparseable value closes that one day only.
func ParseWeeklyHours(blob string) HoursOfOperation {
	hours := AllClosed()

	blob = strings.TrimSpace(blob)
	if blob == "" || blob == "{}" {
		return hours
	}

	var raw map[string]string
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return hours
	}

	days := map[string]*DayHours{
		"Monday":    &hours.Monday,
		"Tuesday":   &hours.Tuesday,
		"Wednesday": &hours.Wednesday,
		"Thursday":  &hours.Thursday,
		"Friday":    &hours.Friday,
		"Saturday":  &hours.Saturday,
		"Sunday":    &hours.Sunday,
	}
	for name, day := range days {
		if parsed, ok := parseDay(raw[name]); ok {
			*day = parsed
		}
	}
	return hours
}

func parseDay(value string) (DayHours, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "Closed") {
		return DayHours{}, false
	}
	if strings.EqualFold(value, "Open 24 hours") {
		return DayHours{Open: "00:00", Close: "23:59"}, true
	}

	parts := rangeSplitPattern.Split(value, -1)
	if len(parts) != 2 {
		return DayHours{}, false
	}
	open := formatTime(parts[0])
	close := formatTime(parts[1])
	if open == "" || close == "" {
		return DayHours{}, false
	}
	return DayHours{Open: open, Close: close}, true
}

// formatTime converts strings like "9", "9:30", "9AM", "9:30PM" to "HH:mm".
// Returns "" when the format is unexpected.
func formatTime(value string) string {
	value = strings.ToUpper(whitespacePattern.ReplaceAllString(value, ""))
	match := timePattern.FindStringSubmatch(value)
	if match == nil {
		return ""
	}

	hour, _ := strconv.Atoi(match[1])
	minute := 0
	if match[2] != "" {
		minute, _ = strconv.Atoi(match[2])
	}

	switch match[3] {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 { // midnight
			hour = 0
		}
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
