package sparkid

import "strings"

// Parsed is the decomposition of an identifier string. Prefix is empty for
// unprefixed ids; Full is the input as given.
type Parsed struct {
	Prefix string `json:"prefix,omitempty"`
	ID     string `json:"id"`
	Full   string `json:"full"`
}

// validateRawID checks the raw segment: length inside the bounds derived
// from the configured entropy, and every symbol a case-insensitive member of
// the alphabet. Identifiers are opaque once generated, so this is a format
// check, not a decode.
func validateRawID(raw string, cfg *Config) error {
	if raw == "" {
		return newError(CodeInvalidID, "id must not be empty")
	}
	minLen, maxLen := minRawLength(cfg.EntropyBits), rawLength(cfg.EntropyBits)
	if len(raw) < minLen || len(raw) > maxLen {
		return newError(CodeInvalidID, "id %q has length %d, want %d to %d for %d entropy bits", raw, len(raw), minLen, maxLen, cfg.EntropyBits)
	}
	cs := newCharset(cfg.Alphabet)
	for i := 0; i < len(raw); i++ {
		if !cs.contains(raw[i]) {
			return newError(CodeInvalidID, "id %q contains %q which is not in the alphabet", raw, raw[i])
		}
	}
	return nil
}

func parse(s string, set *settings) (Parsed, error) {
	if s == "" {
		return Parsed{}, newError(CodeInvalidID, "id must not be empty")
	}
	parts := strings.Split(s, set.cfg.Separator)
	switch len(parts) {
	case 1:
		if err := validateRawID(parts[0], &set.cfg); err != nil {
			return Parsed{}, err
		}
		return Parsed{ID: parts[0], Full: s}, nil
	case 2:
		if err := validateRawID(parts[1], &set.cfg); err != nil {
			return Parsed{}, err
		}
		return Parsed{Prefix: parts[0], ID: parts[1], Full: s}, nil
	default:
		return Parsed{}, newError(CodeInvalidID, "id %q has too many separators", s)
	}
}

// Parse splits s on the configured separator. No separator yields an
// unprefixed result, one separator a prefixed one, more than one is an
// error. Only the raw segment is validated; the prefix segment is taken as
// is, so ids minted under a different prefix rule still parse.
func Parse(s string, opts ...Option) (Parsed, error) {
	set := resolve(opts)
	if err := set.validate(); err != nil {
		return Parsed{}, err
	}
	return parse(s, &set)
}

// IsValidRawID reports whether raw could have been produced by GenerateRaw
// under the resolved configuration. It never returns an error; a malformed
// configuration counts as invalid.
func IsValidRawID(raw string, opts ...Option) bool {
	s := resolve(opts)
	if s.validate() != nil {
		return false
	}
	return validateRawID(raw, &s.cfg) == nil
}

// IsValid reports whether s parses into a well-formed identifier. Errors
// are swallowed to false at this boundary only; use Parse for the reason.
func IsValid(s string, opts ...Option) bool {
	set := resolve(opts)
	if set.validate() != nil {
		return false
	}
	_, err := parse(s, &set)
	return err == nil
}
