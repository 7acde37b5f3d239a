package kaos

import "github.com/alex4998/KaosCollections/btree"

var (
	ErrInvalidArgument = btree.ErrInvalidArgument
	ErrOutOfRange      = btree.ErrOutOfRange
	ErrEmpty           = btree.ErrEmpty
	ErrStale           = btree.ErrStale
)
