package sparkid

import (
	"crypto/rand"
	"fmt"
	"io"
)

// cryptoSource is the default random byte source. The package is a pure
// consumer of it: no seeding, no reseeding.
var cryptoSource io.Reader = rand.Reader

// randomBytes draws exactly n bytes from r. Read errors are impossible from
// crypto/rand on supported platforms, so a failure here means an injected
// source ran dry.
func randomBytes(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("sparkid: read %d random bytes: %w", n, err)
	}
	return buf, nil
}
