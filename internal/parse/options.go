package parse

import "time"

// StandardLayout is the canonical date-time text form of property values.
const StandardLayout = "2006/01/02 15:04:05.000"

// Options controls locale-dependent parsing.
type Options struct {
	// Layouts are tried in order before the generic layout list.
	Layouts []string
	// Location is used for text without zone information. Defaults to time.Local.
	Location *time.Location
	// Now returns the reference time for keywords. Defaults to time.Now.
	Now func() time.Time

	TrueValues  []string
	FalseValues []string
}

// DefaultOptions returns day-first layouts with the usual boolean literals.
func DefaultOptions() Options {
	return Options{
		Layouts: []string{
			StandardLayout,
			"2006/01/02 15:04:05",
			"2006/01/02",
			"02/01/2006 15:04:05",
			"02/01/2006",
			"02 Jan 2006",
			"15:04:05",
			"15:04",
		},
		TrueValues:  []string{"true", "t", "yes", "y", "on", "1"},
		FalseValues: []string{"false", "f", "no", "n", "off", "0"},
	}
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}

	return o.Location
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now().In(o.location())
	}

	return o.Now()
}

func (o Options) trueValues() []string {
	if len(o.TrueValues) == 0 {
		return DefaultOptions().TrueValues
	}

	return o.TrueValues
}

func (o Options) falseValues() []string {
	if len(o.FalseValues) == 0 {
		return DefaultOptions().FalseValues
	}

	return o.FalseValues
}
