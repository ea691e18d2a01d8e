package parse

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// DateTime parses v as a point in time.
func DateTime(v any, opts Options) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	case string:
		return dateTimeText(strings.TrimSpace(t), opts)
	case fmt.Stringer:
		return dateTimeText(strings.TrimSpace(t.String()), opts)
	}

	return time.Time{}, false
}

func dateTimeText(s string, opts Options) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if t, ok := keyword(s, opts); ok {
		return t, true
	}

	loc := opts.location()
	for _, layout := range opts.Layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}

	t, err := cast.ToTimeInDefaultLocationE(s, loc)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func keyword(s string, opts Options) (time.Time, bool) {
	now := opts.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch strings.ToLower(s) {
	case "now":
		return now, true
	case "today":
		return today, true
	case "yesterday":
		return today.AddDate(0, 0, -1), true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	}

	return time.Time{}, false
}

// TimeOfDay returns the time elapsed since midnight of t's day.
func TimeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
