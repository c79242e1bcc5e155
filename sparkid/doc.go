// Package sparkid generates short, URL-safe, cryptographically random
// identifiers with optional type prefixes, like USER_Q7QFHJ2M9PWV5KT.
//
// A raw id encodes 72 bits of entropy (configurable) through a base32
// alphabet that drops the ambiguous symbols 0, 1, I and O. Validation is
// case-insensitive; equality on full strings is exact.
//
// Defaults live in a process-wide store managed by Configure, GetConfig and
// ResetConfig. Every operation also accepts functional options that override
// single keys for that call only, without touching the store:
//
//	sparkid.Configure(sparkid.WithEntropyBits(96))
//	id, err := sparkid.Generate("USER")
//	one, err := sparkid.Generate("ORDER", sparkid.WithCase(sparkid.CaseLower))
package sparkid
