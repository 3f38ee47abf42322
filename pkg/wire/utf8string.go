package wire

import (
	"strings"
	"unicode/utf8"
)

// MaxStringLen is the longest UTF-8 payload the wire format can carry, in
// bytes, set by the 2-byte length prefix.
// MQTT 5.0 Section 1.5.4, MQTT 3.1.1 Section 1.5.3
const MaxStringLen = 65535

// UTF8String is a length-prefixed protocol string: a FixedStr plus a 16-bit
// length mirror that always equals the content length in bytes. Content is
// valid UTF-8 and contains no null character.
type UTF8String struct {
	value  FixedStr
	length TwoByteInt
}

// NewUTF8String returns an empty string with the given byte capacity.
func NewUTF8String(capacity int) UTF8String {
	return UTF8String{value: NewFixedStr(capacity)}
}

// Set replaces the content with s. It fails with ErrStringTooLong when s
// exceeds the capacity or the 65535-byte wire maximum, and with ErrNullChar
// when s contains a null character. On failure the string is unchanged.
func (s *UTF8String) Set(text string) error {
	if len(text) > s.value.Cap() || len(text) > MaxStringLen {
		return ErrStringTooLong
	}
	if strings.ContainsRune(text, 0) {
		return ErrNullChar
	}

	s.value.Clear()
	if err := s.value.Push(text); err != nil {
		return err
	}
	s.length = TwoByteInt(len(text))
	return nil
}

// Encode writes the 2-byte big-endian length prefix followed by the content
// into buf and returns the total bytes written. buf may be larger than
// needed; bytes past the content are left untouched. Fails with
// ErrStringTooLong when the length exceeds the wire maximum and with
// ErrEncodeBufferTooSmall when buf cannot hold prefix plus content.
func (s *UTF8String) Encode(buf []byte) (int, error) {
	if s.length > MaxStringLen {
		return 0, ErrStringTooLong
	}

	total := int(s.length) + 2
	if len(buf) < total {
		return 0, ErrEncodeBufferTooSmall
	}

	prefix := s.length.Bytes()
	copy(buf[:2], prefix[:])
	copy(buf[2:total], s.value.Bytes())

	return total, nil
}

// DecodeUTF8String parses a length-prefixed string from the front of buf
// into a new UTF8String of the given capacity. It fails with
// ErrMalformedBuffer when buf is shorter than the prefix or the declared
// length, ErrInvalidUTF8 on malformed content, ErrNullChar on an embedded
// null, and ErrStringTooLong when the content exceeds capacity.
func DecodeUTF8String(buf []byte, capacity int) (UTF8String, error) {
	if len(buf) < 2 {
		return UTF8String{}, ErrMalformedBuffer
	}

	length := int(TwoByteIntFromBytes([2]byte{buf[0], buf[1]}))
	if 2+length > len(buf) {
		return UTF8String{}, ErrMalformedBuffer
	}

	content := buf[2 : 2+length]
	if !utf8.Valid(content) {
		return UTF8String{}, ErrInvalidUTF8
	}

	s := NewUTF8String(capacity)
	if err := s.Set(string(content)); err != nil {
		return UTF8String{}, err
	}
	return s, nil
}

// String returns the content as text.
func (s *UTF8String) String() string {
	return s.value.String()
}

// Len returns the content length in bytes.
func (s *UTF8String) Len() int {
	return int(s.length)
}
