package inventory

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/quill-network/quill-wire/pkg/p2p/wire/encoding"
)

const (
	// HashSize is the length of an object hash in bytes.
	HashSize = 32

	// EncodedSize is the length of an encoded inventory record: a uint32
	// type followed by the hash.
	EncodedSize = 4 + HashSize
)

var (
	// ErrHashSize is returned when constructing a record from a hash that
	// is not exactly 32 bytes.
	ErrHashSize = errors.New("inventory hash is not 32 bytes")

	// ErrTruncated is returned when decoding a record from a buffer with
	// fewer than 36 bytes remaining.
	ErrTruncated = errors.New("inventory record is truncated")
)

// InvVect identifies a single data object known to a peer. It is embedded
// verbatim inside the inv, getdata and notfound payloads.
type InvVect struct {
	Type InvType // Type of data
	Hash []byte  // Hash of the data, in wire byte order
}

// NewInvVect constructs an InvVect from a wire-order hash. The type is not
// checked against the known set; unknown types are carried as-is.
func NewInvVect(t InvType, hash []byte) (*InvVect, error) {
	if len(hash) != HashSize {
		return nil, errors.Wrapf(ErrHashSize, "got %d bytes", len(hash))
	}

	h := make([]byte, HashSize)
	copy(h, hash)
	return &InvVect{Type: t, Hash: h}, nil
}

// NewInvVectFromHex constructs an InvVect from a display-order hex string,
// reversing it into wire order first.
func NewInvVectFromHex(t InvType, s string) (*InvVect, error) {
	hash, err := HashFromHex(s)
	if err != nil {
		return nil, err
	}

	return &InvVect{Type: t, Hash: hash}, nil
}

// NewTxVect creates a transaction record, optionally as the witness variant.
func NewTxVect(hash []byte, witness bool) (*InvVect, error) {
	t := InvTypeTx
	if witness {
		t = InvTypeWitnessTx
	}
	return NewInvVect(t, hash)
}

// NewTxVectFromHex is NewTxVect for a display-order hex hash.
func NewTxVectFromHex(s string, witness bool) (*InvVect, error) {
	t := InvTypeTx
	if witness {
		t = InvTypeWitnessTx
	}
	return NewInvVectFromHex(t, s)
}

// NewBlockVect creates a block record, optionally as the witness variant.
func NewBlockVect(hash []byte, witness bool) (*InvVect, error) {
	t := InvTypeBlock
	if witness {
		t = InvTypeWitnessBlock
	}
	return NewInvVect(t, hash)
}

// NewBlockVectFromHex is NewBlockVect for a display-order hex hash.
func NewBlockVectFromHex(s string, witness bool) (*InvVect, error) {
	t := InvTypeBlock
	if witness {
		t = InvTypeWitnessBlock
	}
	return NewInvVectFromHex(t, s)
}

// NewFilteredBlockVect creates a filtered block record, optionally as the
// witness variant.
func NewFilteredBlockVect(hash []byte, witness bool) (*InvVect, error) {
	t := InvTypeFilteredBlock
	if witness {
		t = InvTypeFilteredWitnessBlock
	}
	return NewInvVect(t, hash)
}

// NewFilteredBlockVectFromHex is NewFilteredBlockVect for a display-order
// hex hash.
func NewFilteredBlockVectFromHex(s string, witness bool) (*InvVect, error) {
	t := InvTypeFilteredBlock
	if witness {
		t = InvTypeFilteredWitnessBlock
	}
	return NewInvVectFromHex(t, s)
}

// Encode appends the 36-byte wire form of v to w.
func (v *InvVect) Encode(w *bytes.Buffer) error {
	if len(v.Hash) != HashSize {
		return errors.Wrapf(ErrHashSize, "got %d bytes", len(v.Hash))
	}

	if err := encoding.WriteUint32LE(w, uint32(v.Type)); err != nil {
		return err
	}

	return encoding.Write256(w, v.Hash)
}

// Decode reads a 36-byte record from r, leaving any remaining bytes unread
// for the next record. On failure v is left untouched.
func (v *InvVect) Decode(r *bytes.Buffer) error {
	if r.Len() < EncodedSize {
		return errors.Wrapf(ErrTruncated, "%d bytes remaining", r.Len())
	}

	t, err := encoding.ReadUint32LE(r)
	if err != nil {
		return errors.Wrap(ErrTruncated, err.Error())
	}

	hash, err := encoding.Read256(r)
	if err != nil {
		return errors.Wrap(ErrTruncated, err.Error())
	}

	v.Type = InvType(t)
	v.Hash = hash
	return nil
}

// MarshalBinary returns the 36-byte wire form of v.
func (v *InvVect) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, EncodedSize))
	if err := v.Encode(buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes v from the first 36 bytes of data.
func (v *InvVect) UnmarshalBinary(data []byte) error {
	return v.Decode(bytes.NewBuffer(data))
}

// String returns the type name and display-order hash, for debugging.
func (v *InvVect) String() string {
	return fmt.Sprintf("%s:%s", v.Type, HashToHex(v.Hash))
}
