package btree

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
	ErrEmpty           = errors.New("empty collection")
	ErrStale           = errors.New("collection modified during enumeration")
)
