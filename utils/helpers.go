package utils

import (
	"fmt"
	"strings"
	"time"

	"etix/config"

	"github.com/tidwall/gjson"
)

// NormalizeToken uppercases and trims a manually entered attendance token.
// No further format check is done here; accept/reject is the backend's call.
func NormalizeToken(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ExtractToken accepts either a raw token string or a JSON blob pasted from
// a QR scan and returns the literal token value.
func ExtractToken(input string) string {
	trimmed := strings.TrimSpace(input)
	if gjson.Valid(trimmed) {
		if tok := gjson.Get(trimmed, "token").String(); tok != "" {
			return tok
		}
	}
	return trimmed
}

// CombineDateTime builds a local time from an event date ("2006-01-02") and
// a time-of-day string ("15:04:05" or "15:04").
func CombineDateTime(date string, clock string) (time.Time, error) {
	d, err := time.ParseInLocation(config.DATE_PARSE_FORMAT, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date [%s]: %w", date, err)
	}
	t, err := time.Parse(config.CLOCK_PARSE_FORMAT, clock)
	if err != nil {
		t, err = time.Parse(config.CLOCK_SHORT_FORMAT, clock)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse time [%s]: %w", clock, err)
		}
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local), nil
}

func SameDay(a time.Time, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
