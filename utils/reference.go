package utils

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"github.com/speps/go-hashids/v2"
)

// ReferenceCodec produces short human-readable transfer references from
// transaction identifiers. The reference is for support lookups only; the
// UUID remains the unique key.
type ReferenceCodec struct {
	h *hashids.HashID
}

func NewReferenceCodec(salt string) (*ReferenceCodec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 10
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("unable to initialise reference codec: %w", err)
	}
	return &ReferenceCodec{h: h}, nil
}

// FromUUID derives the reference from the first 8 bytes of the transaction
// UUID. hashids only accepts non-negative integers, hence the shift.
func (c *ReferenceCodec) FromUUID(id uuid.UUID) (string, error) {
	n := int64(binary.BigEndian.Uint64(id[0:8]) >> 1)
	ref, err := c.h.EncodeInt64([]int64{n})
	if err != nil {
		return "", fmt.Errorf("unable to encode reference: %w", err)
	}
	return ref, nil
}
