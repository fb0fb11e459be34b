package faker_test

import (
	"math"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leforge/fakekit/pkg/faker"
)

func TestNumberDefaults(t *testing.T) {
	f := newFaker(42)

	for i := 0; i < 100; i++ {
		v := f.Number(nil)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 100.0)
		assert.Equal(t, math.Floor(v), v, "default is whole numbers")
	}
}

func TestNumberRange(t *testing.T) {
	f := newFaker(42)

	for i := 0; i < 100; i++ {
		v := f.Number(&faker.NumberOptions{Min: 10, Max: 20})
		assert.GreaterOrEqual(t, v, 10.0)
		assert.LessOrEqual(t, v, 20.0)
	}
}

func TestNumberDecimals(t *testing.T) {
	f := newFaker(42)

	for i := 0; i < 100; i++ {
		v := f.Number(&faker.NumberOptions{Min: 0, Max: 1, Decimals: 2})
		scaled := v * 100
		assert.InDelta(t, math.Round(scaled), scaled, 1e-9, "at most two decimal places")
	}
}

func TestNumberDegenerate(t *testing.T) {
	f := newFaker(42)

	assert.Equal(t, 5.0, f.Number(&faker.NumberOptions{Min: 5, Max: 5}))
	assert.Equal(t, 7.0, f.Number(&faker.NumberOptions{Min: 7, Max: 3}), "max below min collapses to min")
}

func TestBoolean(t *testing.T) {
	f := newFaker(42)

	always := &faker.BooleanOptions{Likelihood: 1}
	never := &faker.BooleanOptions{Likelihood: 0}
	for i := 0; i < 50; i++ {
		assert.True(t, f.Boolean(always))
		assert.False(t, f.Boolean(never))
	}

	trues := 0
	for i := 0; i < 1000; i++ {
		if f.Boolean(nil) {
			trues++
		}
	}
	assert.Greater(t, trues, 350, "default likelihood is one half")
	assert.Less(t, trues, 650)
}

func TestDateFormats(t *testing.T) {
	f := newFaker(42)

	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, f.Date(nil))
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, f.Date(&faker.DateOptions{Format: faker.FormatDate}))
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, f.Date(&faker.DateOptions{Format: faker.FormatTime}))
	assert.Regexp(t, `^\d+$`, f.Date(&faker.DateOptions{Format: faker.FormatUnix}))
}

func TestDateBounds(t *testing.T) {
	f := newFaker(42)
	from := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 6, 30, 23, 59, 59, 0, time.UTC)

	for i := 0; i < 100; i++ {
		got := f.Date(&faker.DateOptions{From: from, To: to, Format: faker.FormatUnix})
		ts, err := strconv.ParseInt(got, 10, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, ts, from.Unix())
		assert.LessOrEqual(t, ts, to.Unix())
	}
}

func TestDateFixedPoint(t *testing.T) {
	f := newFaker(42)
	at := time.Date(2022, 3, 15, 12, 30, 45, 0, time.UTC)

	got := f.Date(&faker.DateOptions{From: at, To: at})
	assert.Equal(t, "2022-03-15T12:30:45Z", got)

	got = f.Date(&faker.DateOptions{From: at, To: at, Format: faker.FormatUnix})
	assert.Equal(t, strconv.FormatInt(at.Unix(), 10), got)
}

func TestUUID(t *testing.T) {
	pattern := `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`

	for seed := int64(1); seed <= 50; seed++ {
		f := newFaker(seed)
		assert.Regexp(t, pattern, f.UUID(), "seed %d", seed)
	}
}

func TestColorHex(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		f := newFaker(seed)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, f.Color(nil), "seed %d", seed)
	}
}

func TestColorRGB(t *testing.T) {
	f := newFaker(42)
	assert.Regexp(t, `^rgb\(\d{1,3}, \d{1,3}, \d{1,3}\)$`, f.Color(&faker.ColorOptions{Format: faker.FormatRGB}))
}

func TestColorHSL(t *testing.T) {
	f := newFaker(42)
	assert.Regexp(t, `^hsl\(\d{1,3}, \d{1,3}%, \d{1,3}%\)$`, f.Color(&faker.ColorOptions{Format: faker.FormatHSL}))
}
