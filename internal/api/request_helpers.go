package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Messages for integer parameter parsing, shared by path and query params.
const (
	msgNotAnInteger    = "value is not a valid integer"
	msgNotGreaterThan0 = "ensure this value is greater than 0"
)

// parsePositiveInt converts a raw parameter value into a positive int64.
func parsePositiveInt(name, raw string) (int64, *RequestValidationError) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &RequestValidationError{Field: name, Message: msgNotAnInteger}
	}
	if value <= 0 {
		return 0, &RequestValidationError{Field: name, Message: msgNotGreaterThan0}
	}
	return value, nil
}

// pathID extracts a positive integer path parameter.
// Unparseable or non-positive values are reported the same way as body
// validation failures.
func pathID(r *http.Request, name string) (int64, *RequestValidationError) {
	return parsePositiveInt(name, chi.URLParam(r, name))
}

// queryPositiveInt extracts a positive integer query parameter, falling
// back to def when the parameter is absent.
func queryPositiveInt(r *http.Request, name string, def int) (int, *RequestValidationError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	value, verr := parsePositiveInt(name, raw)
	if verr != nil {
		return 0, verr
	}
	return int(value), nil
}
