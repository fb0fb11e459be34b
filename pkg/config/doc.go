// Package config loads fakekit's process-wide generation defaults from
// environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file (if present) is loaded once per process, then the
// environment is parsed into the Generator struct.
//
// Recognized variables:
//
//	FAKEKIT_SEED   int64; 0 (the default) means seed from the wall clock
//	FAKEKIT_THEME  default corpus for text generation; default "lorem"
//
// Parse failures wrap ErrParsingConfig and can be detected with errors.Is.
package config
