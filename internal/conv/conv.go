// Package conv packs UTF-16 code units to and from their serialized byte form.
//
// The transcoders work on []uint16; files and streams carry UTF-16LE or
// UTF-16BE bytes. These helpers move between the two for a given byte order.
package conv

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

// Order returns the byte order for e.
func Order(e unicode.Endianness) binary.ByteOrder {
	if e == unicode.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// PutUnits serializes as many whole units of src as fit into dst and returns
// the number of units written. dst receives 2 bytes per unit.
func PutUnits(dst []byte, src []uint16, order binary.ByteOrder) int {
	n := min(len(dst)/2, len(src))
	for i := 0; i < n; i++ {
		order.PutUint16(dst[2*i:], src[i])
	}
	return n
}

// Units deserializes as many whole units from src as fit into dst and returns
// the number of units read. A trailing odd byte in src is left alone.
func Units(dst []uint16, src []byte, order binary.ByteOrder) int {
	n := min(len(dst), len(src)/2)
	for i := 0; i < n; i++ {
		dst[i] = order.Uint16(src[2*i:])
	}
	return n
}
