package stego

import (
	"errors"
	"fmt"
	"stegbench/pkg/config"
)

var (
	ErrImageNotBigEnough  = errors.New("image not big enough to hold the payload")
	ErrInvalidImage       = errors.New("invalid carrier image")
	ErrInvalidThreshold   = config.ErrBadThreshold
	ErrInvalidBitPosition = errors.New("bit position must be between 0 and 7")
	ErrUnknownMethod      = config.ErrUnknownMethod
)

// CapacityError reports a payload that does not fit the embeddable slots of an image. It is returned before the
// carrier is touched and matches ErrImageNotBigEnough with errors.Is.
type CapacityError struct {
	Required  int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %d bytes required, %d available", ErrImageNotBigEnough, e.Required, e.Available)
}

func (e *CapacityError) Unwrap() error {
	return ErrImageNotBigEnough
}
