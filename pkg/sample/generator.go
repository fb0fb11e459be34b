package sample

import (
	"fmt"

	"github.com/leforge/fakekit/pkg/faker"
)

// Generator is one kind of fake value to produce in a batch. The set of
// implementations is closed except for Func, the escape hatch for
// caller-supplied generators; each variant carries its own typed options.
type Generator interface {
	generate(f *faker.Faker) any
}

// Name generates full names.
type Name struct{ Options *faker.NameOptions }

// FirstName generates first names.
type FirstName struct{}

// LastName generates last names.
type LastName struct{}

// Email generates email addresses.
type Email struct{ Options *faker.EmailOptions }

// Phone generates phone numbers.
type Phone struct{ Options *faker.PhoneOptions }

// Company generates company names.
type Company struct{}

// Address generates street addresses.
type Address struct{}

// City generates city names.
type City struct{}

// State generates state abbreviations.
type State struct{}

// ZipCode generates zip codes.
type ZipCode struct{}

// FullAddress generates complete addresses.
type FullAddress struct{}

// Number generates numbers in a range.
type Number struct{ Options *faker.NumberOptions }

// Boolean generates booleans with a likelihood.
type Boolean struct{ Options *faker.BooleanOptions }

// Date generates formatted timestamps.
type Date struct{ Options *faker.DateOptions }

// UUID generates version-4 UUIDs.
type UUID struct{}

// Color generates colors.
type Color struct{ Options *faker.ColorOptions }

// Func adapts a caller-supplied function into a Generator.
type Func func() any

func (g Name) generate(f *faker.Faker) any { return f.Name(g.Options) }

func (g FirstName) generate(f *faker.Faker) any { return f.FirstName() }

func (g LastName) generate(f *faker.Faker) any { return f.LastName() }

func (g Email) generate(f *faker.Faker) any { return f.Email(g.Options) }

func (g Phone) generate(f *faker.Faker) any { return f.Phone(g.Options) }

func (g Company) generate(f *faker.Faker) any { return f.Company() }

func (g Address) generate(f *faker.Faker) any { return f.Address() }

func (g City) generate(f *faker.Faker) any { return f.City() }

func (g State) generate(f *faker.Faker) any { return f.State() }

func (g ZipCode) generate(f *faker.Faker) any { return f.ZipCode() }

func (g FullAddress) generate(f *faker.Faker) any { return f.FullAddress() }

func (g Number) generate(f *faker.Faker) any { return f.Number(g.Options) }

func (g Boolean) generate(f *faker.Faker) any { return f.Boolean(g.Options) }

func (g Date) generate(f *faker.Faker) any { return f.Date(g.Options) }

func (g UUID) generate(f *faker.Faker) any { return f.UUID() }

func (g Color) generate(f *faker.Faker) any { return f.Color(g.Options) }

func (g Func) generate(*faker.Faker) any { return g() }

// Parse resolves a generator wire name to its variant with default options.
// Unknown names fail with ErrUnknownGenerator.
func Parse(name string) (Generator, error) {
	switch name {
	case "name":
		return Name{}, nil
	case "firstName":
		return FirstName{}, nil
	case "lastName":
		return LastName{}, nil
	case "email":
		return Email{}, nil
	case "phone":
		return Phone{}, nil
	case "company":
		return Company{}, nil
	case "address":
		return Address{}, nil
	case "city":
		return City{}, nil
	case "state":
		return State{}, nil
	case "zipCode":
		return ZipCode{}, nil
	case "fullAddress":
		return FullAddress{}, nil
	case "number":
		return Number{}, nil
	case "boolean":
		return Boolean{}, nil
	case "date":
		return Date{}, nil
	case "uuid":
		return UUID{}, nil
	case "color":
		return Color{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}

// GenerateArray invokes the generator count times against f, forwarding the
// variant's options on every call. A nil generator fails with
// ErrUnknownGenerator.
func GenerateArray(f *faker.Faker, count int, g Generator) ([]any, error) {
	if g == nil {
		return nil, ErrUnknownGenerator
	}
	if count < 0 {
		count = 0
	}
	out := make([]any, count)
	for i := range out {
		out[i] = g.generate(f)
	}
	return out, nil
}

// GenerateArrayByName resolves name via Parse and generates count values.
func GenerateArrayByName(f *faker.Faker, count int, name string) ([]any, error) {
	g, err := Parse(name)
	if err != nil {
		return nil, err
	}
	return GenerateArray(f, count, g)
}
