package server

import (
	"net/http"

	"github.com/jonathan/talent-match/internal/matching"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *matching.NotFoundError:
		return http.StatusNotFound
	case *matching.InvalidInputError:
		return http.StatusBadRequest
	case *matching.AugmentationUnavailableError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
