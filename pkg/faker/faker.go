package faker

import (
	"fmt"
	"strings"

	"github.com/leforge/fakekit/pkg/rng"
)

// Faker generates structured fake values from a deterministic random source.
type Faker struct {
	rnd *rng.Rand
}

// New returns a Faker drawing from rnd.
func New(rnd *rng.Rand) *Faker {
	return &Faker{rnd: rnd}
}

// FirstName returns a first name from the reference table.
func (f *Faker) FirstName() string {
	name, _ := rng.Pick(f.rnd, firstNames)
	return name
}

// LastName returns a last name from the reference table.
func (f *Faker) LastName() string {
	name, _ := rng.Pick(f.rnd, lastNames)
	return name
}

// Name returns a full name, optionally with a middle name drawn from the
// first-name table.
func (f *Faker) Name(opts *NameOptions) string {
	first := f.FirstName()
	if opts != nil && opts.MiddleName {
		return first + " " + f.FirstName() + " " + f.LastName()
	}
	return first + " " + f.LastName()
}

// Email returns a fake email address. The local part is built from a first
// and last name combined in one of six patterns; the domain comes from the
// options or the default domain table.
func (f *Faker) Email(opts *EmailOptions) string {
	first := strings.ToLower(f.FirstName())
	last := strings.ToLower(f.LastName())

	var local string
	switch f.rnd.IntRange(0, 5) {
	case 0:
		local = first + "." + last
	case 1:
		local = first + last
	case 2:
		local = first + "_" + last
	case 3:
		local = first[:1] + last
	case 4:
		local = first + fmt.Sprintf("%d", f.rnd.IntRange(1, 99))
	default:
		local = first + "." + last + fmt.Sprintf("%d", f.rnd.IntRange(1, 99))
	}

	domain := ""
	if opts != nil {
		domain = opts.Domain
	}
	if domain == "" {
		domain, _ = rng.Pick(f.rnd, emailDomains)
	}
	return local + "@" + domain
}

// Phone returns a phone number by filling every '#' in the format template
// with an independently drawn digit.
func (f *Faker) Phone(opts *PhoneOptions) string {
	format := "(###) ###-####"
	countryCode := false
	if opts != nil {
		if opts.Format != "" {
			format = opts.Format
		}
		countryCode = opts.CountryCode
	}

	var b strings.Builder
	b.Grow(len(format) + 3)
	if countryCode {
		b.WriteString("+1 ")
	}
	for _, c := range format {
		if c == '#' {
			b.WriteByte(byte('0' + f.rnd.IntRange(0, 9)))
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Company returns a company name in one of three styles chosen with equal
// probability: "LastName Suffix", "Prefix Core Suffix", or
// "LastName & LastName".
func (f *Faker) Company() string {
	switch f.rnd.IntRange(0, 2) {
	case 0:
		return f.LastName() + " " + f.companySuffix()
	case 1:
		prefix, _ := rng.Pick(f.rnd, companyPrefixes)
		core, _ := rng.Pick(f.rnd, companyCores)
		return prefix + " " + core + " " + f.companySuffix()
	default:
		return f.LastName() + " & " + f.LastName()
	}
}

func (f *Faker) companySuffix() string {
	suffix, _ := rng.Pick(f.rnd, companySuffixes)
	return suffix
}
