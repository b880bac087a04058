package server

import (
	"errors"
	"net/http"
	"stegbench/api"
	"stegbench/pkg/attack"
	"stegbench/pkg/config"
	"stegbench/pkg/imageio"
	"stegbench/pkg/metrics"
	"stegbench/pkg/stego"
)

var (
	errMalformedFlatbuffer = errors.New("malformed flatbuffer")

	errRequestBodyDecode = api.Error{Code: "invalid_body", Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errLossyOutput       = api.Error{Code: "lossy_output", Error: "Stego images can only be returned as png or bmp"}
	errNothingToCompare  = api.Error{Code: "invalid_parameter", Error: "Supply two images, two texts, or both"}
	errInternal          = api.Error{Code: "internal_error", Error: "An internal error occurred"}
)

// errorResponse maps a library error to its HTTP status. Capacity failures are 422, anything the caller can fix by
// changing a parameter is 400.
func errorResponse(err error) (int, api.Error) {
	switch {
	case errors.Is(err, stego.ErrImageNotBigEnough):
		return http.StatusUnprocessableEntity, api.Error{Code: "capacity_exceeded", Error: err.Error()}
	case errors.Is(err, stego.ErrInvalidImage):
		return http.StatusBadRequest, api.Error{Code: "invalid_image", Error: err.Error()}
	case errors.Is(err, attack.ErrUnsupportedAttack):
		return http.StatusBadRequest, api.Error{Code: "unsupported_attack", Error: err.Error()}
	case errors.Is(err, metrics.ErrShapeMismatch),
		errors.Is(err, metrics.ErrWindowTooLarge),
		errors.Is(err, metrics.ErrInvalidWindow):
		return http.StatusBadRequest, api.Error{Code: "incomparable_images", Error: err.Error()}
	case errors.Is(err, attack.ErrInvalidParameter),
		errors.Is(err, stego.ErrInvalidThreshold),
		errors.Is(err, config.ErrUnknownMethod),
		errors.Is(err, config.ErrUnknownFraming),
		errors.Is(err, imageio.ErrUnsupportedFormat):
		return http.StatusBadRequest, api.Error{Code: "invalid_parameter", Error: err.Error()}
	default:
		return http.StatusInternalServerError, errInternal
	}
}
