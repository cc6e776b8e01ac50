package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into the given struct.
//
// The error is returned as-is so callers can distinguish an empty body
// (io.EOF), an oversized body (*http.MaxBytesError when the body is wrapped
// by a size limit), and malformed JSON.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}
