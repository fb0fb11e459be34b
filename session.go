package fakekit

import (
	"github.com/leforge/fakekit/pkg/config"
	"github.com/leforge/fakekit/pkg/faker"
	"github.com/leforge/fakekit/pkg/lorem"
	"github.com/leforge/fakekit/pkg/rng"
)

// Session bundles a random source with the generators bound to it. All
// output of one Session is a pure function of its seed and the sequence of
// calls made against it.
type Session struct {
	rnd   *rng.Rand
	Lorem *lorem.Generator
	Faker *faker.Faker
}

// NewSession returns a Session whose output is fully determined by seed.
func NewSession(seed int64) *Session {
	return newSession(rng.New(seed), "")
}

// NewTimeSeededSession returns a Session seeded from the current wall clock.
func NewTimeSeededSession() *Session {
	return newSession(rng.NewTimeSeeded(), "")
}

// FromEnv builds a Session from the FAKEKIT_* environment variables: the
// seed (time-derived when unset) and the default text theme.
func FromEnv() (*Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	rnd := rng.NewTimeSeeded()
	if cfg.Seed != 0 {
		rnd = rng.New(cfg.Seed)
	}
	return newSession(rnd, cfg.Theme), nil
}

func newSession(rnd *rng.Rand, theme string) *Session {
	var opts []lorem.Option
	if theme != "" {
		opts = append(opts, lorem.WithDefaultTheme(theme))
	}
	return &Session{
		rnd:   rnd,
		Lorem: lorem.New(rnd, opts...),
		Faker: faker.New(rnd),
	}
}

// Rand exposes the session's random source, e.g. for sample.Pick.
func (s *Session) Rand() *rng.Rand {
	return s.rnd
}
