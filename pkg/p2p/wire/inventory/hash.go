// Hashes travel the wire in internal byte order, but are conventionally
// displayed reversed. These helpers convert between the two.

package inventory

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// HashFromHex decodes a display-order hex string into a wire-order hash.
func HashFromHex(s string) ([]byte, error) {
	if s == "" {
		return nil, errors.Wrap(ErrHashSize, "empty hash string")
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrHashSize, err.Error())
	}

	if len(b) != HashSize {
		return nil, errors.Wrapf(ErrHashSize, "got %d bytes", len(b))
	}

	return reverse(b), nil
}

// HashToHex renders a wire-order hash as a display-order hex string.
func HashToHex(hash []byte) string {
	return hex.EncodeToString(reverse(hash))
}

// reverse returns a reversed copy of b, leaving the input untouched.
func reverse(b []byte) []byte {
	r := make([]byte, len(b))
	for i, v := range b {
		r[len(b)-1-i] = v
	}
	return r
}
