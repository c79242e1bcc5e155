package sparkid

// ID is an immutable identifier value: optional prefix, raw segment, and
// the joined full form. Build one with New or Wrap.
type ID struct {
	prefix string
	id     string
	full   string
}

func buildID(prefix, raw string, s *settings) *ID {
	if prefix == "" {
		return &ID{id: raw, full: raw}
	}
	p := applyCase(prefix, s.cfg.Case)
	return &ID{prefix: p, id: raw, full: p + s.cfg.Separator + raw}
}

// New generates a fresh identifier and returns it as an ID. An empty prefix
// builds an unprefixed id.
func New(prefix string, opts ...Option) (*ID, error) {
	s := resolve(opts)
	if err := s.validate(); err != nil {
		return nil, err
	}
	if prefix != "" {
		if err := validatePrefix(prefix, &s.cfg); err != nil {
			return nil, err
		}
	}
	raw, err := rawID(&s)
	if err != nil {
		return nil, err
	}
	return buildID(prefix, raw, &s), nil
}

// Wrap builds an ID around a caller-supplied raw id. The raw id is adopted
// verbatim, without validation against the configuration; only the prefix
// is checked. Use Parse when the input itself is untrusted.
func Wrap(prefix, raw string, opts ...Option) (*ID, error) {
	s := resolve(opts)
	if err := s.validate(); err != nil {
		return nil, err
	}
	if prefix != "" {
		if err := validatePrefix(prefix, &s.cfg); err != nil {
			return nil, err
		}
	}
	return buildID(prefix, raw, &s), nil
}

// Prefix returns the prefix, empty when the id is unprefixed.
func (id *ID) Prefix() string { return id.prefix }

// Raw returns the raw segment, without prefix or separator.
func (id *ID) Raw() string { return id.id }

// Full returns the complete string form.
func (id *ID) Full() string { return id.full }

// String returns the full form, making ID a fmt.Stringer.
func (id *ID) String() string { return id.full }

// Equal reports whether both ids have byte-identical full forms. The
// comparison is exact: validation folds case, equality never does.
func (id *ID) Equal(other *ID) bool {
	if id == nil || other == nil {
		return id == other
	}
	return id.full == other.full
}

// EqualString reports whether the full form equals s byte for byte.
func (id *ID) EqualString(s string) bool {
	return id != nil && id.full == s
}

// Similar generates a new ID sharing this one's prefix with fresh
// randomness.
func (id *ID) Similar(opts ...Option) (*ID, error) {
	return New(id.prefix, opts...)
}
