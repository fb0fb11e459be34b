// Package sample provides generic array sampling and batch generation over
// the fakekit generators.
//
// Pick and PickMultiple sample caller-supplied slices with the shared
// deterministic random source. Batch generation dispatches over a closed set
// of Generator variants, one per faker kind, each carrying its own typed
// options; Parse maps the wire names used by callers ("email", "zipCode",
// ...) onto variants and rejects unknown names with ErrUnknownGenerator.
// A Func variant is the escape hatch for caller-supplied generators.
//
//	gen, err := sample.Parse("uuid")
//	if err != nil { ... }
//	ids, _ := sample.GenerateArray(f, 10, gen)
package sample
