// Package api provides typed resource clients over the core request layer.
// Each call consumes the raw (status, headers, body) triple and decodes the
// body into fully typed records. Client-error statuses from the daemon are
// mapped here, per endpoint, into precise errors.
package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/MisterDA/godocker/pkg/client"
	"github.com/MisterDA/godocker/pkg/jsonx"
)

// Errors raised from the daemon's client-error statuses.
var (
	ErrNoSuchContainer = errors.New("no such container")
	ErrNoSuchImage     = errors.New("no such image")
	ErrNotModified     = errors.New("container already in requested state")
	ErrConflict        = errors.New("conflict")
	ErrBadParameter    = errors.New("bad parameter")
)

// API exposes the daemon's resources.
type API struct {
	c *client.Client
}

// New returns an API backed by the given request client.
func New(c *client.Client) *API {
	return &API{c: c}
}

// Containers returns the container resource client.
func (a *API) Containers() *Containers {
	return &Containers{c: a.c}
}

// Images returns the image resource client.
func (a *API) Images() *Images {
	return &Images{c: a.c}
}

// Version holds the daemon's version report.
type Version struct {
	Version    string `json:"Version"`
	APIVersion string `json:"ApiVersion"`
	GitCommit  string `json:"GitCommit"`
	GoVersion  string `json:"GoVersion"`
}

// Version fetches the daemon's version report.
func (a *API) Version(ctx context.Context) (*Version, error) {
	resp, err := a.c.Get(ctx, "/version", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 {
		return nil, unexpectedStatus("/version", resp.StatusCode)
	}
	var v Version
	if err := jsonx.Unmarshal(resp.Body, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func unexpectedStatus(endpoint string, code int) error {
	return fmt.Errorf("%s: unexpected status %d", endpoint, code)
}
