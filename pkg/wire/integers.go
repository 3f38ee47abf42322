// Package wire implements the MQTT data representations: fixed-width
// big-endian integers, variable byte integers, and length-prefixed UTF-8
// strings over fixed-capacity buffers. All operations are pure and
// allocation-free after construction.
// MQTT 5.0 Section 1.5, MQTT 3.1.1 Section 1.5
package wire

import "encoding/binary"

// TwoByteInt is a 16-bit unsigned integer field, big-endian on the wire.
type TwoByteInt uint16

// TwoByteIntFromBytes interprets b as a big-endian 16-bit integer.
func TwoByteIntFromBytes(b [2]byte) TwoByteInt {
	return TwoByteInt(binary.BigEndian.Uint16(b[:]))
}

// Bytes returns the big-endian encoding of v.
func (v TwoByteInt) Bytes() [2]byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	return b
}

// FourByteInt is a 32-bit unsigned integer field, big-endian on the wire.
type FourByteInt uint32

// FourByteIntFromBytes interprets b as a big-endian 32-bit integer.
func FourByteIntFromBytes(b [4]byte) FourByteInt {
	return FourByteInt(binary.BigEndian.Uint32(b[:]))
}

// Bytes returns the big-endian encoding of v.
func (v FourByteInt) Bytes() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	return b
}
