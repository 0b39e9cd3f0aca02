package inventory_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	crypto "github.com/dusk-network/dusk-crypto/hash"
	"github.com/quill-network/quill-wire/pkg/p2p/wire/inventory"
	"github.com/stretchr/testify/assert"
)

func randHash(t *testing.T) []byte {
	hash, err := crypto.RandEntropy(32)
	if err != nil {
		t.Fatal(err)
	}
	return hash
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	v, err := inventory.NewInvVect(inventory.InvTypeWitnessTx, randHash(t))
	if err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	if err := v.Encode(buf); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, inventory.EncodedSize, buf.Len())

	var v2 inventory.InvVect
	if err := v2.Decode(buf); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, *v, v2)
}

// The wire layout is the little-endian type followed by the raw hash.
func TestEncodeLayout(t *testing.T) {
	v, err := inventory.NewInvVect(inventory.InvTypeBlock, make([]byte, 32))
	if err != nil {
		t.Fatal(err)
	}

	b, err := v.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	expected := append([]byte{0x02, 0x00, 0x00, 0x00}, make([]byte, 32)...)
	assert.Equal(t, expected, b)
	assert.Len(t, b, 36)
}

func TestHexFactoryReversesBytes(t *testing.T) {
	raw := randHash(t)
	s := hex.EncodeToString(raw)

	v, err := inventory.NewInvVectFromHex(inventory.InvTypeTx, s)
	if err != nil {
		t.Fatal(err)
	}

	for i := range raw {
		assert.Equal(t, raw[len(raw)-1-i], v.Hash[i])
	}

	// Raw bytes are taken as already being in wire order.
	v2, err := inventory.NewInvVect(inventory.InvTypeTx, raw)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, raw, v2.Hash)
}

func TestConvenienceFactories(t *testing.T) {
	hash := randHash(t)

	cases := []struct {
		make    func([]byte, bool) (*inventory.InvVect, error)
		plain   inventory.InvType
		witness inventory.InvType
	}{
		{inventory.NewTxVect, inventory.InvTypeTx, inventory.InvTypeWitnessTx},
		{inventory.NewBlockVect, inventory.InvTypeBlock, inventory.InvTypeWitnessBlock},
		{inventory.NewFilteredBlockVect, inventory.InvTypeFilteredBlock, inventory.InvTypeFilteredWitnessBlock},
	}

	for _, c := range cases {
		v, err := c.make(hash, false)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, c.plain, v.Type)
		assert.Equal(t, hash, v.Hash)

		v, err = c.make(hash, true)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, c.witness, v.Type)
	}
}

func TestInvalidHashRejected(t *testing.T) {
	short, err := crypto.RandEntropy(31)
	if err != nil {
		t.Fatal(err)
	}
	long, err := crypto.RandEntropy(33)
	if err != nil {
		t.Fatal(err)
	}

	_, err = inventory.NewInvVect(inventory.InvTypeTx, short)
	assert.ErrorIs(t, err, inventory.ErrHashSize)

	_, err = inventory.NewInvVect(inventory.InvTypeTx, long)
	assert.ErrorIs(t, err, inventory.ErrHashSize)

	_, err = inventory.NewInvVect(inventory.InvTypeTx, nil)
	assert.ErrorIs(t, err, inventory.ErrHashSize)

	// Encoding a hand-built value with a bad hash fails the same way.
	v := inventory.InvVect{Type: inventory.InvTypeTx, Hash: short}
	assert.ErrorIs(t, v.Encode(new(bytes.Buffer)), inventory.ErrHashSize)
}

func TestTruncatedDecodeRejected(t *testing.T) {
	v, err := inventory.NewInvVect(inventory.InvTypeBlock, randHash(t))
	if err != nil {
		t.Fatal(err)
	}

	b, err := v.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var v2 inventory.InvVect
	assert.ErrorIs(t, v2.Decode(bytes.NewBuffer(b[:35])), inventory.ErrTruncated)
	assert.ErrorIs(t, v2.Decode(new(bytes.Buffer)), inventory.ErrTruncated)

	// A failed decode leaves the target untouched.
	assert.Equal(t, inventory.InvVect{}, v2)
}

// Decoding from a buffer holding more than one record consumes exactly 36
// bytes, leaving the rest for the next record.
func TestDecodeLeavesRemainder(t *testing.T) {
	v, err := inventory.NewInvVect(inventory.InvTypeTx, randHash(t))
	if err != nil {
		t.Fatal(err)
	}

	b, err := v.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	buf := bytes.NewBuffer(append(b, 0xca, 0xfe, 0xba, 0xbe))

	var v2 inventory.InvVect
	if err := v2.Decode(buf); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, *v, v2)
	assert.Equal(t, 4, buf.Len())
}

func TestUnknownTypePreserved(t *testing.T) {
	v, err := inventory.NewInvVect(inventory.InvType(0xFFFFFFFF), randHash(t))
	if err != nil {
		t.Fatal(err)
	}

	b, err := v.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var v2 inventory.InvVect
	if err := v2.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, inventory.InvType(0xFFFFFFFF), v2.Type)
	assert.Equal(t, *v, v2)
}

// The constructor copies its input, so mutating the source afterwards does
// not reach into the value.
func TestConstructorCopiesHash(t *testing.T) {
	hash := randHash(t)

	v, err := inventory.NewInvVect(inventory.InvTypeTx, hash)
	if err != nil {
		t.Fatal(err)
	}

	hash[0] ^= 0xff
	assert.NotEqual(t, hash[0], v.Hash[0])
}
