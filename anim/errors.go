package anim

import "errors"

// Errors returned by Animate and CancelAnimations. Errors from the property
// accessor are returned unchanged.
var (
	ErrInvalidInstance = errors.New("anim: invalid instance")
	ErrTypeMismatch    = errors.New("anim: type mismatch")
	ErrUnsupportedType = errors.New("anim: unsupported type")
	ErrBufferOverflow  = errors.New("anim: buffer overflow")
)
