package sparkid

// The codec is a fixed-width base32 bit packer: 5 bits per symbol, most
// significant bit first. It knows nothing about prefixes, separators, or
// configuration beyond the alphabet it is handed.

const (
	alphabetSize  = 32
	bitsPerSymbol = 5
)

// Encode maps src to text using alphabet, where the symbol at position i
// encodes the 5-bit value i. Bytes are consumed most significant bit first;
// a final remainder of 1-4 bits is left-padded to a full symbol. The output
// holds ceil(8*len(src)/5) symbols.
//
// alphabet must contain exactly 32 distinct symbols, otherwise an Error with
// code INVALID_ALPHABET is returned.
func Encode(src []byte, alphabet string) (string, error) {
	if err := checkAlphabet(alphabet); err != nil {
		return "", err
	}

	out := make([]byte, 0, (len(src)*8+bitsPerSymbol-1)/bitsPerSymbol)
	var acc uint32
	var bits uint
	for _, b := range src {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= bitsPerSymbol {
			bits -= bitsPerSymbol
			out = append(out, alphabet[(acc>>bits)&31])
		}
		acc &= 1<<bits - 1
	}
	if bits > 0 {
		out = append(out, alphabet[(acc<<(bitsPerSymbol-bits))&31])
	}
	return string(out), nil
}

func checkAlphabet(alphabet string) error {
	if len(alphabet) != alphabetSize {
		return newError(CodeInvalidAlphabet,
			"alphabet must contain exactly %d characters, got %d", alphabetSize, len(alphabet))
	}
	var seen [256]bool
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if seen[c] {
			return newError(CodeInvalidAlphabet, "alphabet contains duplicate character %q", c)
		}
		seen[c] = true
	}
	return nil
}

// charset answers case-insensitive membership questions for one alphabet.
// Identifiers are never decoded back to bytes; membership plus a length
// bound is the whole validity check.
type charset struct {
	member [256]bool
}

func newCharset(alphabet string) *charset {
	var cs charset
	for i := 0; i < len(alphabet); i++ {
		cs.member[foldByte(alphabet[i])] = true
	}
	return &cs
}

func (cs *charset) contains(c byte) bool {
	return cs.member[foldByte(c)]
}

func foldByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
