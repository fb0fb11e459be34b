package faker

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var defaultDateFrom = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Number returns a value drawn uniformly from [Min, Max). Decimals controls
// rounding: zero floors to a whole number, otherwise the value is rounded to
// that many decimal places. Min == Max returns Min exactly.
func (f *Faker) Number(opts *NumberOptions) float64 {
	min, max, decimals := 0.0, 100.0, 0
	if opts != nil {
		decimals = opts.Decimals
		if opts.Min != 0 || opts.Max != 0 {
			min, max = opts.Min, opts.Max
		}
	}
	if max < min {
		max = min
	}

	v := f.rnd.Float64()*(max-min) + min
	if decimals <= 0 {
		return math.Floor(v)
	}
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// Boolean returns true with the configured likelihood. A nil options struct
// means 0.5.
func (f *Faker) Boolean(opts *BooleanOptions) bool {
	likelihood := 0.5
	if opts != nil {
		likelihood = opts.Likelihood
	}
	return f.rnd.Float64() < likelihood
}

// Date draws a timestamp uniformly between From and To (inclusive, second
// resolution) and renders it per the requested format. Timestamps are
// rendered in UTC.
func (f *Faker) Date(opts *DateOptions) string {
	from, to := defaultDateFrom, time.Now()
	format := FormatDateTime
	if opts != nil {
		if !opts.From.IsZero() {
			from = opts.From
		}
		if !opts.To.IsZero() {
			to = opts.To
		}
		format = opts.Format
	}

	lo, hi := from.Unix(), to.Unix()
	ts := lo
	if hi > lo {
		ts = lo + int64(f.rnd.Float64()*float64(hi-lo+1))
		if ts > hi {
			ts = hi
		}
	}

	t := time.Unix(ts, 0).UTC()
	switch format {
	case FormatDate:
		return t.Format(time.DateOnly)
	case FormatTime:
		return t.Format(time.TimeOnly)
	case FormatUnix:
		return strconv.FormatInt(ts, 10)
	default:
		return t.Format(time.RFC3339)
	}
}

// UUID returns a version-4 UUID whose bytes come from the deterministic
// random source, so the same seed yields the same IDs.
func (f *Faker) UUID() string {
	id, err := uuid.NewRandomFromReader(f.rnd)
	if err != nil {
		// The rng reader never fails.
		panic(err)
	}
	return id.String()
}

// Color returns a random color with independently drawn RGB channels,
// rendered as hex, rgb(), or hsl().
func (f *Faker) Color(opts *ColorOptions) string {
	format := FormatHex
	if opts != nil {
		format = opts.Format
	}

	r := f.rnd.IntRange(0, 255)
	g := f.rnd.IntRange(0, 255)
	b := f.rnd.IntRange(0, 255)

	switch format {
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	case FormatHSL:
		h, s, l := rgbToHSL(r, g, b)
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
	default:
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
}

// rgbToHSL applies the standard RGB to HSL transform. Degenerate inputs
// (all channels equal) get hue and saturation zero.
func rgbToHSL(r, g, b int) (int, int, int) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case rf:
			h = (gf - bf) / d
			if gf < bf {
				h += 6
			}
		case gf:
			h = (bf-rf)/d + 2
		default:
			h = (rf-gf)/d + 4
		}
		h /= 6
	}

	return int(math.Round(h * 360)), int(math.Round(s * 100)), int(math.Round(l * 100))
}
