package attack

import (
	"errors"
)

var (
	ErrInvalidParameter  = errors.New("invalid attack parameter")
	ErrUnsupportedAttack = errors.New("unsupported attack")
)
