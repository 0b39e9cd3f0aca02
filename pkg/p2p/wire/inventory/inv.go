package inventory

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/quill-network/quill-wire/pkg/config"
	"github.com/quill-network/quill-wire/pkg/p2p/wire/encoding"
)

// ErrTooManyItems is returned when an Inv payload exceeds the configured
// item limit, on either side of the wire.
var ErrTooManyItems = errors.New("inv payload is too large")

// Inv is the payload body shared by the inv, getdata and notfound messages:
// a CompactSize count followed by that many inventory records. The outer
// message envelope is the caller's concern.
type Inv struct {
	InvList []InvVect
}

// AddItem appends a record to the payload. The hash is checked at encoding
// time, not here.
func (inv *Inv) AddItem(t InvType, hash []byte) {
	inv.InvList = append(inv.InvList, InvVect{Type: t, Hash: hash})
}

// AddVect appends an already-constructed record to the payload.
func (inv *Inv) AddVect(v InvVect) {
	inv.InvList = append(inv.InvList, v)
}

// Encode an Inv payload into a buffer.
func (inv *Inv) Encode(w *bytes.Buffer) error {
	if uint32(len(inv.InvList)) > config.Get().Wire.MaxInvItems {
		return errors.Wrapf(ErrTooManyItems, "%d items", len(inv.InvList))
	}

	if err := encoding.WriteVarInt(w, uint64(len(inv.InvList))); err != nil {
		return err
	}

	for i := range inv.InvList {
		if err := inv.InvList[i].Encode(w); err != nil {
			return err
		}
	}

	return nil
}

// Decode an Inv payload from a buffer. The count is bounded before any
// allocation happens, so a hostile count cannot exhaust memory.
func (inv *Inv) Decode(r *bytes.Buffer) error {
	lenVect, err := encoding.ReadVarInt(r)
	if err != nil {
		return err
	}

	if lenVect > uint64(config.Get().Wire.MaxInvItems) {
		return errors.Wrapf(ErrTooManyItems, "%d items", lenVect)
	}

	inv.InvList = make([]InvVect, lenVect)
	for i := uint64(0); i < lenVect; i++ {
		if err := inv.InvList[i].Decode(r); err != nil {
			return err
		}
	}

	return nil
}
