// Package faker produces structured fake values — names, emails, phone
// numbers, companies, addresses, numbers, booleans, dates, UUIDs, and
// colors — from fixed reference tables and a deterministic random source.
//
// A Faker is bound to a single rng.Rand; the same seed always yields the
// same values in the same order:
//
//	f := faker.New(rng.New(42))
//	email := f.Email(nil)
//	phone := f.Phone(&faker.PhoneOptions{CountryCode: true})
//
// Every generator takes a nil-able options struct whose zero value means
// "all defaults". Outputs are plain strings, numbers, and booleans; nothing
// here performs I/O or retains state beyond the shared Rand.
//
// A Faker is not safe for concurrent use because the underlying Rand is not.
package faker
