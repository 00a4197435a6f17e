// Package transport provides the low-level socket transport implementation.
package transport

import (
	"context"
	"net"
	"os"
	"strings"
	"time"

	"github.com/MisterDA/godocker/pkg/errors"
)

const (
	// DefaultSocketPath is the standard daemon control socket.
	DefaultSocketPath = "/var/run/docker.sock"

	// ReadChunkSize is the number of bytes requested per transport read.
	ReadChunkSize = 4096
)

// Address is an immutable endpoint descriptor for the control daemon.
type Address struct {
	network string // "unix" or "tcp"
	addr    string // socket path, or host:port
}

// DefaultAddress returns the address of the standard daemon socket.
func DefaultAddress() Address {
	return Address{network: "unix", addr: DefaultSocketPath}
}

// AddressFromEnv builds an address from the DOCKER_HOST environment variable,
// falling back to the default socket when it is unset.
func AddressFromEnv() (Address, error) {
	host := os.Getenv("DOCKER_HOST")
	if host == "" {
		return DefaultAddress(), nil
	}
	return ParseAddress(host)
}

// ParseAddress parses an endpoint descriptor. Accepted forms are
// "unix:///path/to/socket", "tcp://host:port", and a bare absolute socket path.
func ParseAddress(s string) (Address, error) {
	switch {
	case strings.HasPrefix(s, "unix://"):
		path := strings.TrimPrefix(s, "unix://")
		if path == "" {
			return Address{}, errors.NewValidationError("unix address has empty socket path")
		}
		return Address{network: "unix", addr: path}, nil
	case strings.HasPrefix(s, "tcp://"):
		hostport := strings.TrimPrefix(s, "tcp://")
		if _, _, err := net.SplitHostPort(hostport); err != nil {
			return Address{}, errors.NewValidationError("tcp address must be host:port")
		}
		return Address{network: "tcp", addr: hostport}, nil
	case strings.HasPrefix(s, "/"):
		return Address{network: "unix", addr: s}, nil
	default:
		return Address{}, errors.NewValidationError("unsupported address: " + s)
	}
}

// Network returns the socket network, "unix" or "tcp".
func (a Address) Network() string { return a.network }

// String returns the address in URL form.
func (a Address) String() string {
	if a.network == "" {
		return ""
	}
	return a.network + "://" + a.addr
}

// Options controls socket-level behavior. The zero value means blocking I/O
// with no deadlines, which is the core contract; callers wanting cancellation
// layer it here.
type Options struct {
	ConnTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Conn is an exclusively-owned transport handle bound to one request
// lifecycle. It is never reused across requests.
type Conn struct {
	raw          net.Conn
	readTimeout  time.Duration
	writeTimeout time.Duration
	closed       bool
}

type closeWriter interface {
	CloseWrite() error
}

// Dial opens a connection to the daemon at the given address.
func Dial(ctx context.Context, addr Address, opts Options) (*Conn, error) {
	if addr.network == "" {
		return nil, errors.NewValidationError("address is empty")
	}

	dialer := &net.Dialer{Timeout: opts.ConnTimeout}
	raw, err := dialer.DialContext(ctx, addr.network, addr.addr)
	if err != nil {
		return nil, errors.NewConnectionError(addr.String(), err)
	}

	return &Conn{
		raw:          raw,
		readTimeout:  opts.ReadTimeout,
		writeTimeout: opts.WriteTimeout,
	}, nil
}

// WriteAll writes the full buffer, looping over partial writes.
func (c *Conn) WriteAll(p []byte) error {
	if c.writeTimeout > 0 {
		if err := c.raw.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return errors.NewIOError("setting write deadline", err)
		}
		defer c.raw.SetWriteDeadline(time.Time{})
	}

	written := 0
	for written < len(p) {
		n, err := c.raw.Write(p[written:])
		if err != nil {
			return errors.NewIOError("writing request", err)
		}
		written += n
	}
	return nil
}

// CloseWrite half-closes the connection: it signals end-of-request to the
// peer while leaving the read side open for the response.
func (c *Conn) CloseWrite() error {
	cw, ok := c.raw.(closeWriter)
	if !ok {
		return errors.NewIOError("half-closing connection", nil)
	}
	if err := cw.CloseWrite(); err != nil {
		return errors.NewIOError("half-closing connection", err)
	}
	return nil
}

// Read reads up to len(p) bytes from the connection. End-of-stream surfaces
// as io.EOF from the underlying socket.
func (c *Conn) Read(p []byte) (int, error) {
	if c.readTimeout > 0 {
		if err := c.raw.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			return 0, errors.NewIOError("setting read deadline", err)
		}
	}
	return c.raw.Read(p)
}

// Close releases the connection. Idempotent.
func (c *Conn) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.raw.Close()
}
