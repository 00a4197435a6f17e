// Package client provides the main HTTP client API for the control daemon.
//
// The client speaks a deliberately narrow HTTP/1.1 subset: one connection per
// request, no keep-alive, no chunked transfer encoding, no TLS. The request
// side is framed by Content-Length plus a write-side half-close; the response
// body, when one exists, runs until the peer closes the stream.
package client

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/MisterDA/godocker/pkg/errors"
	"github.com/MisterDA/godocker/pkg/jsonx"
	"github.com/MisterDA/godocker/pkg/scanner"
	"github.com/MisterDA/godocker/pkg/transport"
)

// Response represents a parsed daemon response. Header lines are exposed raw
// and in wire order, with the status line already removed; collaborators
// needing a specific header parse the line themselves.
type Response struct {
	StatusCode int
	Headers    []string
	Body       []byte
}

// Client issues requests to a control daemon over a local socket.
type Client struct {
	addr transport.Address
	opts transport.Options
}

// New returns a Client bound to the given daemon address.
func New(addr transport.Address) *Client {
	return &Client{addr: addr}
}

// NewWithOptions returns a Client with socket-level options (deadlines).
func NewWithOptions(addr transport.Address, opts transport.Options) *Client {
	return &Client{addr: addr, opts: opts}
}

// Address returns the daemon address this client is bound to.
func (c *Client) Address() transport.Address {
	return c.addr
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, "GET", path, query, nil)
}

// Post issues a POST request with an opaque pre-serialized JSON payload.
func (c *Client) Post(ctx context.Context, path string, query url.Values, payload []byte) (*Response, error) {
	return c.Do(ctx, "POST", path, query, payload)
}

// PostJSON serializes v and issues a POST request with it.
func (c *Client) PostJSON(ctx context.Context, path string, query url.Values, v any) (*Response, error) {
	payload, err := jsonx.Marshal(v)
	if err != nil {
		return nil, err
	}
	return c.Post(ctx, path, query, payload)
}

// Delete issues a DELETE request and returns only the status code.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (int, error) {
	resp, err := c.Do(ctx, "DELETE", path, query, nil)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

// Do executes one request: connect, write, half-close, parse the response,
// close. The connection is released on every exit path. Client-error statuses
// (4xx) are not errors at this level — they propagate in the Response so
// resource collaborators can raise precise, endpoint-aware errors.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, payload []byte) (*Response, error) {
	req, err := BuildRequest(method, path, query, payload)
	if err != nil {
		return nil, err
	}

	conn, err := transport.Dial(ctx, c.addr, c.opts)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if err := conn.WriteAll(req); err != nil {
		return nil, err
	}
	if err := conn.CloseWrite(); err != nil {
		return nil, err
	}

	return readResponse(conn)
}

func readResponse(conn *transport.Conn) (*Response, error) {
	var sc scanner.Scanner
	buf := make([]byte, transport.ReadChunkSize)

	// Collect the header block. A zero-byte read is a premature end of
	// stream; whatever lines were completed by then are all there is.
	for !sc.Done() {
		n, err := conn.Read(buf)
		if n > 0 {
			sc.Feed(buf[:n])
			continue
		}
		if err == io.EOF || err == nil {
			break
		}
		return nil, errors.NewIOError("reading response headers", err)
	}

	lines := sc.Lines()
	if len(lines) == 0 {
		return nil, errors.NewProtocolError("response has no status line", nil)
	}
	statusCode, err := parseStatusLine(lines[0])
	if err != nil {
		return nil, err
	}

	if statusCode >= 500 {
		return nil, errors.NewServerError(statusCode)
	}

	resp := &Response{
		StatusCode: statusCode,
		Headers:    lines[1:],
	}
	if statusCode == 204 || statusCode == 205 {
		return resp, nil
	}

	// Read the body to end of stream; the peer marks completion by closing
	// (or half-closing) the connection.
	body := append([]byte(nil), sc.Rest()...)
	for {
		n, err := conn.Read(buf)
		body = append(body, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewIOError("reading response body", err)
		}
		if n == 0 {
			break
		}
	}
	resp.Body = body
	return resp, nil
}

// parseStatusLine extracts the numeric status code from between the first two
// spaces of the status line.
func parseStatusLine(line string) (int, error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return 0, errors.NewProtocolError("invalid status line: "+strconv.Quote(line), nil)
	}
	code, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errors.NewProtocolError("invalid status code in "+strconv.Quote(line), err)
	}
	return code, nil
}
