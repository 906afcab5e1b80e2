// status.go - Taxonomy kind to HTTP status mapping

package apperrors

import "net/http"

// StatusCode maps an error's kind to the HTTP status the request boundary
// should answer with.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
