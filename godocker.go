// Package godocker provides a minimal HTTP/1.1 client for a Docker-style
// control daemon reachable over a local socket. It opens one connection per
// request, frames the request with Content-Length plus a write-side
// half-close, and parses the response from a byte stream that may arrive in
// arbitrary chunks.
package godocker

import (
	"github.com/MisterDA/godocker/pkg/api"
	"github.com/MisterDA/godocker/pkg/client"
	"github.com/MisterDA/godocker/pkg/errors"
	"github.com/MisterDA/godocker/pkg/transport"
)

// Version is the current version of the godocker library
const Version = "1.0.0"

// Re-export key types for easier usage
type (
	// Address is an endpoint descriptor for the control daemon.
	Address = transport.Address

	// Options controls socket-level behavior (deadlines).
	Options = transport.Options

	// Response represents a parsed daemon response.
	Response = client.Response

	// Client issues raw requests to the daemon.
	Client = client.Client

	// API exposes the daemon's typed resources.
	API = api.API

	// Error represents a structured error with context information.
	Error = errors.Error
)

// Re-export error types for convenience
const (
	ErrorTypeConnection = errors.ErrorTypeConnection
	ErrorTypeProtocol   = errors.ErrorTypeProtocol
	ErrorTypeServer     = errors.ErrorTypeServer
	ErrorTypeIO         = errors.ErrorTypeIO
	ErrorTypeValidation = errors.ErrorTypeValidation
)

// DefaultAddress returns the address of the standard daemon socket.
func DefaultAddress() Address {
	return transport.DefaultAddress()
}

// AddressFromEnv builds an address from DOCKER_HOST, falling back to the
// default socket when it is unset.
func AddressFromEnv() (Address, error) {
	return transport.AddressFromEnv()
}

// ParseAddress parses "unix:///path", "tcp://host:port", or a bare socket
// path.
func ParseAddress(s string) (Address, error) {
	return transport.ParseAddress(s)
}

// NewClient returns a request client bound to the given daemon address.
func NewClient(addr Address) *Client {
	return client.New(addr)
}

// NewClientWithOptions returns a request client with socket-level options.
func NewClientWithOptions(addr Address, opts Options) *Client {
	return client.NewWithOptions(addr, opts)
}

// NewAPI returns the typed resource layer over a request client.
func NewAPI(c *Client) *API {
	return api.New(c)
}

// IsConnectionError checks if an error is a connect failure.
func IsConnectionError(err error) bool {
	return errors.IsConnectionError(err)
}

// IsProtocolError checks if an error indicates a malformed peer response.
func IsProtocolError(err error) bool {
	return errors.IsProtocolError(err)
}

// IsServerError checks if an error is a daemon-side failure (status >= 500).
func IsServerError(err error) (bool, int) {
	return errors.IsServerError(err)
}

// GetErrorType returns the error type if it's a structured error.
func GetErrorType(err error) string {
	return string(errors.GetErrorType(err))
}
