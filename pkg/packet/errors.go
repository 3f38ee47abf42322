package packet

import "errors"

// Sentinel errors for fixed-header construction and decoding.
var (
	// ErrInvalidPacketType indicates a reserved or unknown packet type, or a
	// type whose fixed flag bits do not match the header byte.
	ErrInvalidPacketType = errors.New("invalid packet type")

	// ErrInvalidQoS indicates an invalid QoS level.
	ErrInvalidQoS = errors.New("invalid QoS level")

	// ErrInvalidDup indicates invalid DUP/reserved flag bits in a PUBLISH
	// header byte.
	ErrInvalidDup = errors.New("invalid DUP flag")
)
