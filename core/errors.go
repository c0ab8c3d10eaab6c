package core

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidArm           = errors.New("invalid arm")
)
