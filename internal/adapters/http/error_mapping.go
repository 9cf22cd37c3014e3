package httpadapter

import (
	"net/http"

	"github.com/sangithaasrikalaiselvan/Cyber-Crime/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	case domain.IsKind(err, domain.ErrExtraction):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
