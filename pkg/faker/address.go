package faker

import (
	"fmt"

	"github.com/leforge/fakekit/pkg/rng"
)

// Address returns a street address: a number in [100, 9999], a street name,
// and a street type.
func (f *Faker) Address() string {
	number := f.rnd.IntRange(100, 9999)
	street, _ := rng.Pick(f.rnd, streetNames)
	kind, _ := rng.Pick(f.rnd, streetTypes)
	return fmt.Sprintf("%d %s %s", number, street, kind)
}

// City returns a city name from the reference table.
func (f *Faker) City() string {
	city, _ := rng.Pick(f.rnd, cities)
	return city
}

// State returns a two-letter state abbreviation.
func (f *Faker) State() string {
	state, _ := rng.Pick(f.rnd, states)
	return state
}

// ZipCode returns a random five-digit zip code as a string.
func (f *Faker) ZipCode() string {
	return fmt.Sprintf("%d", f.rnd.IntRange(10000, 99999))
}

// FullAddress returns "<address>, <city>, <state> <zip>".
func (f *Faker) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", f.Address(), f.City(), f.State(), f.ZipCode())
}
