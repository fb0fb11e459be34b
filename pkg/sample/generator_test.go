package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leforge/fakekit/pkg/faker"
	"github.com/leforge/fakekit/pkg/rng"
	"github.com/leforge/fakekit/pkg/sample"
)

func newFaker(seed int64) *faker.Faker {
	return faker.New(rng.New(seed))
}

func TestParseKnownNames(t *testing.T) {
	names := []string{
		"name", "firstName", "lastName", "email", "phone", "company",
		"address", "city", "state", "zipCode", "fullAddress", "number",
		"boolean", "date", "uuid", "color",
	}

	for _, name := range names {
		g, err := sample.Parse(name)
		require.NoError(t, err, "name %q", name)
		require.NotNil(t, g)
	}
}

func TestParseUnknown(t *testing.T) {
	g, err := sample.Parse("unknownGen")
	require.ErrorIs(t, err, sample.ErrUnknownGenerator)
	assert.Nil(t, g)
	assert.Contains(t, err.Error(), "unknownGen")
}

func TestGenerateArrayUUIDs(t *testing.T) {
	f := newFaker(42)

	got, err := sample.GenerateArray(f, 4, sample.UUID{})
	require.NoError(t, err)
	require.Len(t, got, 4)

	pattern := `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`
	for _, v := range got {
		s, ok := v.(string)
		require.True(t, ok)
		assert.Regexp(t, pattern, s)
	}
}

func TestGenerateArrayForwardsOptions(t *testing.T) {
	f := newFaker(42)

	got, err := sample.GenerateArray(f, 5, sample.Email{
		Options: &faker.EmailOptions{Domain: "leforge.io"},
	})
	require.NoError(t, err)
	for _, v := range got {
		assert.Contains(t, v.(string), "@leforge.io", "options forwarded on every call")
	}
}

func TestGenerateArrayFunc(t *testing.T) {
	f := newFaker(42)
	calls := 0

	got, err := sample.GenerateArray(f, 3, sample.Func(func() any {
		calls++
		return calls
	}))
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, got)
}

func TestGenerateArrayNil(t *testing.T) {
	f := newFaker(42)

	_, err := sample.GenerateArray(f, 3, nil)
	require.ErrorIs(t, err, sample.ErrUnknownGenerator)
}

func TestGenerateArrayByName(t *testing.T) {
	got, err := sample.GenerateArrayByName(newFaker(42), 4, "boolean")
	require.NoError(t, err)
	require.Len(t, got, 4)
	for _, v := range got {
		assert.IsType(t, false, v)
	}

	_, err = sample.GenerateArrayByName(newFaker(42), 4, "nope")
	require.ErrorIs(t, err, sample.ErrUnknownGenerator)
}

func TestGenerateArrayDeterministic(t *testing.T) {
	a, err := sample.GenerateArray(newFaker(7), 10, sample.Name{})
	require.NoError(t, err)
	b, err := sample.GenerateArray(newFaker(7), 10, sample.Name{})
	require.NoError(t, err)
	require.Equal(t, a, b)
}
