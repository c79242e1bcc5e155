package sparkid

import "math"

// Stats describes the identifier shape a configuration produces.
type Stats struct {
	EntropyBits     int     `json:"entropy_bits"`
	ByteLength      int     `json:"byte_length"`
	RawLength       int     `json:"raw_length"`
	MinRawLength    int     `json:"min_raw_length"`
	MaxRawLength    int     `json:"max_raw_length"`
	AlphabetSize    int     `json:"alphabet_size"`
	Alphabet        string  `json:"alphabet"`
	Separator       string  `json:"separator"`
	Case            Case    `json:"case"`
	MaxPrefixLength int     `json:"max_prefix_length"`
	Combinations    float64 `json:"combinations"`
}

// GetStats reports the identifier shape under the resolved configuration.
// Every figure derives from the same per-call resolution Generate uses, so
// an entropy override is reflected here and never a stale constant.
func GetStats(opts ...Option) (Stats, error) {
	s := resolve(opts)
	if err := s.validate(); err != nil {
		return Stats{}, err
	}
	cfg := s.cfg
	return Stats{
		EntropyBits:     cfg.EntropyBits,
		ByteLength:      byteLength(cfg.EntropyBits),
		RawLength:       rawLength(cfg.EntropyBits),
		MinRawLength:    minRawLength(cfg.EntropyBits),
		MaxRawLength:    rawLength(cfg.EntropyBits),
		AlphabetSize:    len(cfg.Alphabet),
		Alphabet:        cfg.Alphabet,
		Separator:       cfg.Separator,
		Case:            cfg.Case,
		MaxPrefixLength: cfg.MaxPrefixLength,
		Combinations:    math.Pow(2, float64(cfg.EntropyBits)),
	}, nil
}
