package mapper

import (
	"image/jpeg"

	"datamapper/internal/parse"

	"github.com/sirupsen/logrus"
)

type settings struct {
	parse          parse.Options
	standardLayout string
	jpegQuality    int
	log            logrus.FieldLogger
	converters     *Converters
	enums          *Enums
}

// Option configures a Factory or a mapper built outside one.
type Option func(*settings)

func newSettings(opts []Option) settings {
	s := settings{
		parse:          parse.DefaultOptions(),
		standardLayout: parse.StandardLayout,
		jpegQuality:    jpeg.DefaultQuality,
	}

	for _, opt := range opts {
		opt(&s)
	}

	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	if s.converters == nil {
		s.converters = NewConverters()
	}
	if s.enums == nil {
		s.enums = NewEnums()
	}

	return s
}

// WithParseOptions sets the date-time layouts, location and boolean literals.
func WithParseOptions(o parse.Options) Option {
	return func(s *settings) { s.parse = o }
}

// WithStandardLayout sets the layout date-time values are formatted with.
func WithStandardLayout(layout string) Option {
	return func(s *settings) {
		if layout != "" {
			s.standardLayout = layout
		}
	}
}

// WithJPEGQuality sets the quality images are encoded with, 1..100.
func WithJPEGQuality(q int) Option {
	return func(s *settings) {
		if q >= 1 && q <= 100 {
			s.jpegQuality = q
		}
	}
}

// WithLogger sets the logger that reports failed generic conversions.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) { s.log = l }
}

// WithConverters sets the converter registry used by general mappers.
func WithConverters(c *Converters) Option {
	return func(s *settings) { s.converters = c }
}

// WithEnums sets the enum registry used by general mappers.
func WithEnums(e *Enums) Option {
	return func(s *settings) { s.enums = e }
}
