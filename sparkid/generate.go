package sparkid

import (
	"regexp"
	"strings"
)

// prefixPattern is the allowed prefix shape. Underscore is legal even though
// it doubles as the default separator; such ids generate fine but will not
// survive a round trip through Parse.
var prefixPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func validatePrefix(prefix string, cfg *Config) error {
	if prefix == "" {
		return newError(CodeInvalidPrefix, "prefix must not be empty")
	}
	if len(prefix) > cfg.MaxPrefixLength {
		return newError(CodeInvalidPrefix, "prefix %q exceeds maximum length %d", prefix, cfg.MaxPrefixLength)
	}
	if !prefixPattern.MatchString(prefix) {
		return newError(CodeInvalidPrefix, "prefix %q must match [A-Za-z0-9_]+", prefix)
	}
	return nil
}

// applyCase folds s per the configured casing. CaseMixed leaves it as is.
func applyCase(s string, c Case) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseLower:
		return strings.ToLower(s)
	default:
		return s
	}
}

// rawID draws the configured entropy and encodes it. The encoded string is
// cut to ceil(EntropyBits/5) symbols: whole-byte padding can overshoot that
// length for entropies that are not multiples of 40, and the cut keeps every
// generated id inside the validation bounds.
func rawID(s *settings) (string, error) {
	buf, err := randomBytes(s.rand, byteLength(s.cfg.EntropyBits))
	if err != nil {
		return "", err
	}
	encoded, err := Encode(buf, s.cfg.Alphabet)
	if err != nil {
		return "", err
	}
	if n := rawLength(s.cfg.EntropyBits); len(encoded) > n {
		encoded = encoded[:n]
	}
	return applyCase(encoded, s.cfg.Case), nil
}

func generate(prefix string, s *settings) (string, error) {
	if prefix != "" {
		if err := validatePrefix(prefix, &s.cfg); err != nil {
			return "", err
		}
	}
	raw, err := rawID(s)
	if err != nil {
		return "", err
	}
	if prefix == "" {
		return raw, nil
	}
	return applyCase(prefix, s.cfg.Case) + s.cfg.Separator + raw, nil
}

// Generate returns a fresh identifier. An empty prefix produces a bare raw
// id; a non-empty prefix is validated before any randomness is drawn, then
// joined to the raw id with the configured separator.
func Generate(prefix string, opts ...Option) (string, error) {
	s := resolve(opts)
	if err := s.validate(); err != nil {
		return "", err
	}
	return generate(prefix, &s)
}

// GenerateRaw returns a fresh identifier with no prefix and no separator.
func GenerateRaw(opts ...Option) (string, error) {
	s := resolve(opts)
	if err := s.validate(); err != nil {
		return "", err
	}
	return rawID(&s)
}

// MustGenerate is Generate that panics on error, for initialization paths
// where a bad prefix or config is programmer error.
func MustGenerate(prefix string, opts ...Option) string {
	id, err := Generate(prefix, opts...)
	if err != nil {
		panic(err)
	}
	return id
}

const (
	// MaxBatchSize bounds the count accepted by GenerateMultiple and
	// GenerateUnique.
	MaxBatchSize = 1000

	// uniqueRetryFactor scales the total draw budget of GenerateUnique.
	uniqueRetryFactor = 10
)

func checkCount(count int) error {
	if count <= 0 {
		return newError(CodeInvalidCount, "count must be positive, got %d", count)
	}
	if count > MaxBatchSize {
		return newError(CodeCountTooLarge, "count %d exceeds maximum %d", count, MaxBatchSize)
	}
	return nil
}

// GenerateMultiple returns exactly count independent identifiers sharing the
// prefix. The configuration is resolved once and reused for every draw, so a
// concurrent Configure cannot split a batch across two configs.
func GenerateMultiple(count int, prefix string, opts ...Option) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	s := resolve(opts)
	if err := s.validate(); err != nil {
		return nil, err
	}
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := generate(prefix, &s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GenerateUnique returns count distinct identifiers in first-generation
// order. Duplicate draws are discarded and retried within a total budget of
// count*10 draws; exhausting the budget fails with GENERATION_FAILED. At the
// default 72 bits of entropy the budget is never felt; it matters only for
// deliberately tiny entropies whose id space is close to count.
func GenerateUnique(count int, prefix string, opts ...Option) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	s := resolve(opts)
	if err := s.validate(); err != nil {
		return nil, err
	}
	budget := count * uniqueRetryFactor
	seen := make(map[string]struct{}, count)
	ids := make([]string, 0, count)
	for attempt := 0; attempt < budget && len(ids) < count; attempt++ {
		id, err := generate(prefix, &s)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) < count {
		return nil, newError(CodeGenerationFailed, "generated %d of %d unique ids within %d attempts", len(ids), count, budget)
	}
	return ids, nil
}
