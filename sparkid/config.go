package sparkid

import (
	"io"
	"sync"
)

// Case controls the output casing of generated identifiers and their
// prefixes.
type Case string

const (
	// CaseUpper folds the raw id and prefix to upper case (the default).
	CaseUpper Case = "upper"
	// CaseLower folds the raw id and prefix to lower case.
	CaseLower Case = "lower"
	// CaseMixed leaves the encoder output as emitted (upper case with the
	// default alphabet) and a supplied prefix untouched.
	CaseMixed Case = "mixed"
)

// Encoding selects the identifier codec. Only base32 is implemented; the
// field exists so configurations naming it are accepted.
type Encoding string

// EncodingBase32 is the only implemented encoding: 32 symbols, 5 bits each.
const EncodingBase32 Encoding = "base32"

// DefaultAlphabet is the default 32-symbol set. It drops the visually
// ambiguous 0, 1, I and O; validation folds case, so lowercase input is
// accepted everywhere.
const DefaultAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// Defaults for the remaining configuration keys.
const (
	DefaultEntropyBits     = 72
	DefaultMaxPrefixLength = 20
	DefaultSeparator       = "_"
	DefaultCase            = CaseUpper
)

// MaxEntropyBits is the upper bound accepted for EntropyBits: a 103-symbol
// raw id, well past any practical identifier size. The cap keeps the length
// arithmetic away from integer overflow and every derived figure, the
// combination count included, inside float64 range.
const MaxEntropyBits = 512

// Config holds every tunable of identifier generation, validation, and
// parsing. The zero value is not usable; start from GetConfig or rely on the
// per-call defaults.
type Config struct {
	// Alphabet is the 32-symbol encoding table; the symbol at position i
	// encodes the value i. Checked lazily, at operation time.
	Alphabet string `json:"alphabet" mapstructure:"alphabet"`
	// EntropyBits is the number of random bits per identifier, from 1 to
	// MaxEntropyBits. ceil(/8) bytes are drawn and the raw id is ceil(/5)
	// symbols long.
	EntropyBits int `json:"entropy_bits" mapstructure:"entropy_bits"`
	// MaxPrefixLength bounds the length of a prefix passed to Generate,
	// New, or Wrap.
	MaxPrefixLength int `json:"max_prefix_length" mapstructure:"max_prefix_length"`
	// Separator joins prefix and raw id, and is what Parse splits on.
	Separator string `json:"separator" mapstructure:"separator"`
	// Case is the output casing; see the Case constants.
	Case Case `json:"case" mapstructure:"case"`
	// Encoding is reserved; only EncodingBase32 is accepted.
	Encoding Encoding `json:"encoding" mapstructure:"encoding"`
	// Timestamp is reserved for a future time-ordered variant. It is
	// accepted and carried but has no effect on any operation.
	Timestamp bool `json:"timestamp" mapstructure:"timestamp"`
	// MachineID is reserved alongside Timestamp and is equally inert.
	MachineID int `json:"machine_id" mapstructure:"machine_id"`
}

func defaultConfig() Config {
	return Config{
		Alphabet:        DefaultAlphabet,
		EntropyBits:     DefaultEntropyBits,
		MaxPrefixLength: DefaultMaxPrefixLength,
		Separator:       DefaultSeparator,
		Case:            DefaultCase,
		Encoding:        EncodingBase32,
	}
}

// settings is one operation's resolved view: a config snapshot plus the
// random source. Options mutate only this copy, never the store.
type settings struct {
	cfg  Config
	rand io.Reader
}

// Option overrides a single configuration key for one call, or for the
// process when passed to Configure. Keys not overridden resolve from the
// process-wide defaults set via Configure, then from the built-in defaults.
type Option func(*settings)

// WithAlphabet overrides the encoding alphabet.
func WithAlphabet(alphabet string) Option {
	return func(s *settings) { s.cfg.Alphabet = alphabet }
}

// WithEntropyBits overrides the bits of randomness per identifier.
func WithEntropyBits(bits int) Option {
	return func(s *settings) { s.cfg.EntropyBits = bits }
}

// WithMaxPrefixLength overrides the prefix length bound.
func WithMaxPrefixLength(n int) Option {
	return func(s *settings) { s.cfg.MaxPrefixLength = n }
}

// WithSeparator overrides the prefix/id separator.
func WithSeparator(sep string) Option {
	return func(s *settings) { s.cfg.Separator = sep }
}

// WithCase overrides the output casing.
func WithCase(c Case) Option {
	return func(s *settings) { s.cfg.Case = c }
}

// WithEncoding overrides the reserved encoding selector. Anything other
// than EncodingBase32 fails at operation time with INVALID_CONFIG.
func WithEncoding(enc Encoding) Option {
	return func(s *settings) { s.cfg.Encoding = enc }
}

// WithTimestamp sets the reserved Timestamp flag. Accepted, no effect.
func WithTimestamp(enabled bool) Option {
	return func(s *settings) { s.cfg.Timestamp = enabled }
}

// WithMachineID sets the reserved MachineID field. Accepted, no effect.
func WithMachineID(id int) Option {
	return func(s *settings) { s.cfg.MachineID = id }
}

// WithConfig replaces every key at once with cfg. Later options still apply
// on top.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithRandomSource overrides the random byte source for one call (or, via
// Configure, for the process). The source must behave like crypto/rand:
// the package only ever reads from it. Passing nil restores crypto/rand.
func WithRandomSource(r io.Reader) Option {
	return func(s *settings) {
		if r == nil {
			r = cryptoSource
		}
		s.rand = r
	}
}

// store holds the process-wide defaults. Configure and ResetConfig write
// under the lock; every operation snapshots under a read lock before
// applying its per-call options, so concurrent reconfiguration never tears
// a call's view.
var store = struct {
	sync.RWMutex
	cfg  Config
	rand io.Reader
}{cfg: defaultConfig(), rand: cryptoSource}

// Configure merges the given overrides into the process-wide defaults.
// Keys not named keep their current values.
func Configure(opts ...Option) {
	store.Lock()
	defer store.Unlock()
	s := settings{cfg: store.cfg, rand: store.rand}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	store.cfg = s.cfg
	store.rand = s.rand
}

// GetConfig returns a copy of the process-wide defaults. Mutating the copy
// has no effect on the store.
func GetConfig() Config {
	store.RLock()
	defer store.RUnlock()
	return store.cfg
}

// ResetConfig restores the built-in default table verbatim, including the
// crypto/rand source.
func ResetConfig() {
	store.Lock()
	defer store.Unlock()
	store.cfg = defaultConfig()
	store.rand = cryptoSource
}

func resolve(opts []Option) settings {
	store.RLock()
	s := settings{cfg: store.cfg, rand: store.rand}
	store.RUnlock()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if s.rand == nil {
		s.rand = cryptoSource
	}
	return s
}

// validate applies the lazy configuration checks shared by every operation.
// The alphabet keeps its dedicated INVALID_ALPHABET code; the remaining
// knobs report INVALID_CONFIG.
func (s *settings) validate() error {
	cfg := &s.cfg
	if cfg.Encoding != EncodingBase32 {
		return newError(CodeInvalidConfig, "unsupported encoding %q, only %q is implemented", cfg.Encoding, EncodingBase32)
	}
	if err := checkAlphabet(cfg.Alphabet); err != nil {
		return err
	}
	if cfg.EntropyBits < 1 {
		return newError(CodeInvalidConfig, "entropy bits must be positive, got %d", cfg.EntropyBits)
	}
	if cfg.EntropyBits > MaxEntropyBits {
		return newError(CodeInvalidConfig, "entropy bits must be at most %d, got %d", MaxEntropyBits, cfg.EntropyBits)
	}
	if cfg.Separator == "" {
		return newError(CodeInvalidConfig, "separator must not be empty")
	}
	if cfg.MaxPrefixLength < 1 {
		return newError(CodeInvalidConfig, "max prefix length must be positive, got %d", cfg.MaxPrefixLength)
	}
	switch cfg.Case {
	case CaseUpper, CaseLower, CaseMixed:
	default:
		return newError(CodeInvalidConfig, "unknown case %q", cfg.Case)
	}
	return nil
}

// byteLength is the number of random bytes drawn for the given entropy.
func byteLength(bits int) int {
	return (bits + 7) / 8
}

// rawLength is the exact symbol count of a generated raw id, and the upper
// validation bound: ceil(bits/5).
func rawLength(bits int) int {
	return (bits + bitsPerSymbol - 1) / bitsPerSymbol
}

// minRawLength is the lower validation bound: floor(bits/5). It differs
// from rawLength only when bits is not a multiple of 5.
func minRawLength(bits int) int {
	return bits / bitsPerSymbol
}
