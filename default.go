package fakekit

import (
	"sync"

	"github.com/leforge/fakekit/pkg/faker"
	"github.com/leforge/fakekit/pkg/lorem"
	"github.com/leforge/fakekit/pkg/sample"
)

// The process-wide default session. Wrappers below serialize access with mu;
// see the package documentation for the concurrency caveats.
var (
	mu         sync.Mutex
	defSession = NewTimeSeededSession()
)

// SetSeed replaces the default session with one seeded deterministically.
func SetSeed(seed int64) {
	mu.Lock()
	defSession = NewSession(seed)
	mu.Unlock()
}

// ResetSeed replaces the default session with a fresh time-seeded one.
func ResetSeed() {
	mu.Lock()
	defSession = NewTimeSeededSession()
	mu.Unlock()
}

// Text generation on the default session.

func Words(count int, opts *lorem.WordsOptions) string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Lorem.Words(count, opts)
}

func Sentences(count int, opts *lorem.SentencesOptions) string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Lorem.Sentences(count, opts)
}

func Paragraphs(count int, opts *lorem.ParagraphsOptions) string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Lorem.Paragraphs(count, opts)
}

func Characters(count int, opts *lorem.CharactersOptions) string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Lorem.Characters(count, opts)
}

func Classic() string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Lorem.Classic()
}

func Themed(theme string, count int, unit lorem.Unit) string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Lorem.Themed(theme, count, unit)
}

func Bacon(count int, unit lorem.Unit) string { return Themed("bacon", count, unit) }

func Hipster(count int, unit lorem.Unit) string { return Themed("hipster", count, unit) }

func Corporate(count int, unit lorem.Unit) string { return Themed("corporate", count, unit) }

func Tech(count int, unit lorem.Unit) string { return Themed("tech", count, unit) }

func Pirate(count int, unit lorem.Unit) string { return Themed("pirate", count, unit) }

// Entity generation on the default session.

func Name(opts *faker.NameOptions) string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.Name(opts)
}

func FirstName() string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.FirstName()
}

func LastName() string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.LastName()
}

func Email(opts *faker.EmailOptions) string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.Email(opts)
}

func Phone(opts *faker.PhoneOptions) string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.Phone(opts)
}

func Company() string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.Company()
}

func Address() string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.Address()
}

func City() string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.City()
}

func State() string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.State()
}

func ZipCode() string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.ZipCode()
}

func FullAddress() string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.FullAddress()
}

func Number(opts *faker.NumberOptions) float64 {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.Number(opts)
}

func Boolean(opts *faker.BooleanOptions) bool {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.Boolean(opts)
}

func Date(opts *faker.DateOptions) string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.Date(opts)
}

func UUID() string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.UUID()
}

func Color(opts *faker.ColorOptions) string {
	mu.Lock()
	defer mu.Unlock()
	return defSession.Faker.Color(opts)
}

// Sampling and batch generation on the default session.

// Pick returns a uniformly selected element of items; false when empty.
func Pick[T any](items []T) (T, bool) {
	mu.Lock()
	defer mu.Unlock()
	return sample.Pick(defSession.rnd, items)
}

func PickMultiple[T any](items []T, count int, opts *sample.PickOptions) []T {
	mu.Lock()
	defer mu.Unlock()
	return sample.PickMultiple(defSession.rnd, items, count, opts)
}

func GenerateArray(count int, g sample.Generator) ([]any, error) {
	mu.Lock()
	defer mu.Unlock()
	return sample.GenerateArray(defSession.Faker, count, g)
}

// GenerateArrayByName resolves a generator wire name and produces count
// values; unknown names fail with sample.ErrUnknownGenerator.
func GenerateArrayByName(count int, name string) ([]any, error) {
	mu.Lock()
	defer mu.Unlock()
	return sample.GenerateArrayByName(defSession.Faker, count, name)
}
