// Serialization functions for fixed-size data, such as hashes.

package encoding

import (
	"bytes"
	"fmt"
	"io"
)

// Read256 will read 32 bytes from r and return them as a slice of bytes.
// A short read yields io.ErrUnexpectedEOF, never a partial slice.
func Read256(r *bytes.Buffer) ([]byte, error) {
	var b [32]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return nil, err
	}
	return b[:], nil
}

// Write256 will check the length of b and then write to w.
func Write256(w *bytes.Buffer, b []byte) error {
	if len(b) != 32 {
		return fmt.Errorf("b is not proper size - expected 32 bytes, is actually %d bytes", len(b))
	}
	_, err := w.Write(b)
	return err
}
