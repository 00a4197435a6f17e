package client

import (
	"bytes"
	"net/url"
	"strconv"
	"strings"

	"github.com/MisterDA/godocker/pkg/errors"
)

// BuildRequest serializes one request into its raw wire bytes. The payload,
// if any, is an opaque pre-serialized JSON document; only POST requests carry
// one. No headers beyond the JSON framing pair are ever emitted — the peer is
// a local control daemon tolerant of minimal requests.
func BuildRequest(method, path string, query url.Values, payload []byte) ([]byte, error) {
	switch method {
	case "GET", "POST", "DELETE":
	default:
		return nil, errors.NewValidationError("unsupported method " + method)
	}
	if !strings.HasPrefix(path, "/") {
		return nil, errors.NewValidationError("request path must start with /")
	}
	if method != "POST" && len(payload) > 0 {
		return nil, errors.NewValidationError(method + " requests cannot carry a payload")
	}

	var buf bytes.Buffer
	buf.WriteString(method)
	buf.WriteByte(' ')
	buf.WriteString(path)
	if encoded := query.Encode(); encoded != "" {
		buf.WriteByte('?')
		buf.WriteString(encoded)
	}
	buf.WriteString(" HTTP/1.1\r\n")

	if method == "POST" {
		buf.WriteString("Content-Type: application/json\r\n")
		buf.WriteString("Content-Length: " + strconv.Itoa(len(payload)) + "\r\n")
	}
	buf.WriteString("\r\n")
	buf.Write(payload)

	return buf.Bytes(), nil
}
