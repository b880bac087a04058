package metrics

import (
	"errors"
)

var (
	ErrShapeMismatch  = errors.New("images differ in shape")
	ErrLengthMismatch = errors.New("bit sequences differ in length")
	ErrWindowTooLarge = errors.New("ssim window larger than the image")
	ErrInvalidWindow  = errors.New("ssim window size must be a positive odd number and sigma positive")
)
