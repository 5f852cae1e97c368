// Package config persists the input configuration: the bindings document
// as JSON and tuning settings as TOML.
//
// Loading never crashes the caller. An absent or unparsable source yields
// the default configuration together with a distinguishing outcome and
// the error detail, so the caller can log and continue.
package config
