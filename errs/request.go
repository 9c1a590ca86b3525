package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Upload & multipart parsing errors. Both surface with a 500 status.
var (
	ErrMalformedPayload    = errors.New("malformed payload")
	ErrMaxFileSizeExceeded = errors.New("max file size exceeded")
)

func NewMalformedPayloadError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrMalformedPayload,
		Details:    "could not parse multipart form",
		Cause:      cause,
		Field:      "payload",
	}
}

func NewMaxFileSizeExceededError(field string, maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrMaxFileSizeExceeded,
		Details:    fmt.Sprintf("file in field %q exceeds maximum allowed size of %d bytes", field, maxSize),
		Field:      field,
	}
}

func IsMalformedPayloadError(err error) bool {
	return errors.Is(err, ErrMalformedPayload)
}

func IsMaxFileSizeExceededError(err error) bool {
	return errors.Is(err, ErrMaxFileSizeExceeded)
}
