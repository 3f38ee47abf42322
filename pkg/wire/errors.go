package wire

import "errors"

// Sentinel errors for the data-representation layer.
var (
	// ErrMalformedVarInt indicates a variable byte integer that is out of the
	// 28-bit value range or whose encoding never terminates within 4 bytes.
	ErrMalformedVarInt = errors.New("malformed variable byte integer")

	// ErrVarIntOutOfRange indicates a variable byte integer that would need
	// more than 4 encoded bytes.
	ErrVarIntOutOfRange = errors.New("variable byte integer out of range")

	// ErrBufferOverflow indicates an append that would exceed a fixed
	// buffer's capacity.
	ErrBufferOverflow = errors.New("fixed buffer overflow")

	// ErrStringTooLong indicates a string longer than its buffer's capacity
	// or the 65535-byte wire maximum.
	ErrStringTooLong = errors.New("UTF-8 string too long")

	// ErrNullChar indicates a UTF-8 string containing a null character.
	ErrNullChar = errors.New("UTF-8 string contains null character")

	// ErrEncodeBufferTooSmall indicates an encode target too small for the
	// length prefix plus content.
	ErrEncodeBufferTooSmall = errors.New("encode buffer too small")

	// ErrMalformedBuffer indicates a decode source shorter than its declared
	// contents.
	ErrMalformedBuffer = errors.New("malformed string buffer")

	// ErrInvalidUTF8 indicates a string containing invalid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 string")
)
