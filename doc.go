// Package fakekit is a deterministic, seedable engine for placeholder text
// and synthetic data: lorem-style prose with pluggable themed vocabularies,
// plus fake names, emails, phone numbers, companies, addresses, numbers,
// booleans, dates, UUIDs, and colors.
//
// Everything draws from one linear congruential random source, so a seed
// reproduces the exact same output sequence bit for bit, across platforms
// and releases. There is no I/O, no persistence, and no transient failure
// mode; the only surfaced error class is an unknown generator name in batch
// generation.
//
// # Sessions
//
// A Session owns its random source and exposes the text engine and the
// entity faker bound to it:
//
//	s := fakekit.NewSession(42)
//	text := s.Lorem.Paragraphs(2, nil)
//	email := s.Faker.Email(nil)
//
// Sessions are cheap; create one per logical generation stream. A Session is
// not safe for concurrent use — reproducible output from multiple goroutines
// requires one Session per goroutine, each with its own seed.
//
// # The default session
//
// Package-level functions (Words, Sentences, Name, UUID, ...) route to a
// process-wide default session created at init with a time-derived seed.
// SetSeed replaces it with a deterministic one; ResetSeed returns to a
// time-derived seed:
//
//	fakekit.SetSeed(1337)
//	a := fakekit.UUID()
//	fakekit.SetSeed(1337)
//	b := fakekit.UUID() // a == b
//
// Default-session calls are serialized by a mutex, so they are safe to call
// concurrently, but interleaving goroutines makes the draw order — and
// therefore the output — nondeterministic. Reseeding while other goroutines
// generate is likewise the caller's race to avoid. Use explicit Sessions
// when reproducibility under concurrency matters.
package fakekit
