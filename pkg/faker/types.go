package faker

import "time"

// NameOptions configures Faker.Name.
type NameOptions struct {
	// MiddleName inserts a middle name, drawn from the first-name table,
	// between first and last name.
	MiddleName bool
}

// EmailOptions configures Faker.Email.
type EmailOptions struct {
	// Domain fixes the part after the @. Empty draws from the default
	// domain table.
	Domain string
}

// PhoneOptions configures Faker.Phone.
type PhoneOptions struct {
	// Format is a template whose '#' runes are replaced by random digits.
	// Default: "(###) ###-####".
	Format string

	// CountryCode prefixes the number with "+1 ".
	CountryCode bool
}

// NumberOptions configures Faker.Number.
type NumberOptions struct {
	// Min and Max bound the half-open range [Min, Max). Both zero means
	// the default range [0, 100).
	Min float64
	Max float64

	// Decimals is the number of decimal places to round to. Zero floors
	// to a whole number.
	Decimals int
}

// BooleanOptions configures Faker.Boolean.
type BooleanOptions struct {
	// Likelihood is the probability of returning true. A nil options
	// struct means 0.5; an explicit zero means always false.
	Likelihood float64
}

// DateFormat selects how Faker.Date renders the drawn timestamp.
type DateFormat int

const (
	// FormatDateTime renders a full RFC 3339 timestamp (default).
	FormatDateTime DateFormat = iota
	// FormatDate renders the date only ("2006-01-02").
	FormatDate
	// FormatTime renders the time only ("15:04:05").
	FormatTime
	// FormatUnix renders Unix epoch seconds in decimal.
	FormatUnix
)

// DateOptions configures Faker.Date.
type DateOptions struct {
	// From and To bound the drawn timestamp inclusively.
	// Defaults: 2020-01-01 UTC and the current time.
	From time.Time
	To   time.Time

	Format DateFormat
}

// ColorFormat selects how Faker.Color renders the drawn RGB channels.
type ColorFormat int

const (
	// FormatHex renders "#rrggbb" (default).
	FormatHex ColorFormat = iota
	// FormatRGB renders "rgb(r, g, b)".
	FormatRGB
	// FormatHSL renders "hsl(h, s%, l%)".
	FormatHSL
)

// ColorOptions configures Faker.Color.
type ColorOptions struct {
	Format ColorFormat
}
