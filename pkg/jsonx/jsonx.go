// Package jsonx provides the JSON codec shared by the request path and the
// resource collaborators.
package jsonx

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/MisterDA/godocker/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal serializes a request payload to its wire bytes.
func Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.NewValidationError("encoding JSON payload: " + err.Error())
	}
	return data, nil
}

// Unmarshal decodes a response body into a fully typed record. It fails on
// syntactically invalid JSON; absent optional fields keep their zero values.
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.NewProtocolError("decoding JSON body", err)
	}
	return nil
}

// Valid reports whether data is syntactically valid JSON.
func Valid(data []byte) bool {
	return json.Valid(data)
}
