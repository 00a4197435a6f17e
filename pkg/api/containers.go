package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MisterDA/godocker/pkg/client"
	"github.com/MisterDA/godocker/pkg/jsonx"
)

// Container is one entry of the daemon's container listing. Optional fields
// default to their zero values when the daemon omits them.
type Container struct {
	ID         string `json:"Id"`
	Names      []string
	Image      string
	Command    string
	Created    int64
	Status     string
	Ports      []Port
	SizeRw     int64
	SizeRootFs int64
}

// Port describes one published port of a container.
type Port struct {
	IP          string `json:"IP"`
	PrivatePort int
	PublicPort  int
	Type        string
}

// ContainerConfig is the creation payload for a new container.
type ContainerConfig struct {
	Hostname   string            `json:"Hostname,omitempty"`
	User       string            `json:"User,omitempty"`
	Image      string            `json:"Image"`
	Cmd        []string          `json:"Cmd,omitempty"`
	Entrypoint []string          `json:"Entrypoint,omitempty"`
	Env        []string          `json:"Env,omitempty"`
	WorkingDir string            `json:"WorkingDir,omitempty"`
	Tty        bool              `json:"Tty,omitempty"`
	Labels     map[string]string `json:"Labels,omitempty"`
}

// CreatedContainer is the daemon's reply to a successful create.
type CreatedContainer struct {
	ID       string `json:"Id"`
	Warnings []string
}

// Change is one filesystem change reported for a container.
type Change struct {
	Path string
	Kind int
}

// Containers is the container resource client.
type Containers struct {
	c *client.Client
}

// List returns the daemon's containers; with all set, stopped ones too.
func (r *Containers) List(ctx context.Context, all bool) ([]Container, error) {
	query := url.Values{}
	if all {
		query.Set("all", "1")
	}
	resp, err := r.c.Get(ctx, "/containers/json", query)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 {
		return nil, unexpectedStatus("/containers/json", resp.StatusCode)
	}
	var containers []Container
	if err := jsonx.Unmarshal(resp.Body, &containers); err != nil {
		return nil, err
	}
	return containers, nil
}

// Create asks the daemon to create a container from config.
func (r *Containers) Create(ctx context.Context, config ContainerConfig) (*CreatedContainer, error) {
	resp, err := r.c.PostJSON(ctx, "/containers/create", nil, config)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case 200, 201:
	case 404:
		return nil, fmt.Errorf("create %s: %w", config.Image, ErrNoSuchImage)
	case 406:
		return nil, fmt.Errorf("create %s: %w", config.Image, ErrBadParameter)
	case 409:
		return nil, fmt.Errorf("create %s: %w", config.Image, ErrConflict)
	default:
		return nil, unexpectedStatus("/containers/create", resp.StatusCode)
	}
	var created CreatedContainer
	if err := jsonx.Unmarshal(resp.Body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Start starts a created container.
func (r *Containers) Start(ctx context.Context, id string) error {
	return r.signal(ctx, id, "start", nil)
}

// Stop stops a running container, giving it timeoutSeconds to exit before it
// is killed.
func (r *Containers) Stop(ctx context.Context, id string, timeoutSeconds int) error {
	return r.signal(ctx, id, "stop", waitQuery(timeoutSeconds))
}

// Restart stops and starts a container.
func (r *Containers) Restart(ctx context.Context, id string, timeoutSeconds int) error {
	return r.signal(ctx, id, "restart", waitQuery(timeoutSeconds))
}

// Kill sends the container's main process an uncatchable kill.
func (r *Containers) Kill(ctx context.Context, id string) error {
	return r.signal(ctx, id, "kill", nil)
}

// Pause suspends all processes in a container.
func (r *Containers) Pause(ctx context.Context, id string) error {
	return r.signal(ctx, id, "pause", nil)
}

// Unpause resumes a paused container.
func (r *Containers) Unpause(ctx context.Context, id string) error {
	return r.signal(ctx, id, "unpause", nil)
}

// Wait blocks until the container exits and returns its exit status.
func (r *Containers) Wait(ctx context.Context, id string) (int, error) {
	resp, err := r.c.Post(ctx, "/containers/"+id+"/wait", nil, nil)
	if err != nil {
		return 0, err
	}
	switch resp.StatusCode {
	case 200:
	case 404:
		return 0, fmt.Errorf("wait %s: %w", id, ErrNoSuchContainer)
	default:
		return 0, unexpectedStatus("/containers/{id}/wait", resp.StatusCode)
	}
	var result struct {
		StatusCode int `json:"StatusCode"`
	}
	if err := jsonx.Unmarshal(resp.Body, &result); err != nil {
		return 0, err
	}
	return result.StatusCode, nil
}

// Changes lists filesystem changes made since the container started.
func (r *Containers) Changes(ctx context.Context, id string) ([]Change, error) {
	resp, err := r.c.Get(ctx, "/containers/"+id+"/changes", nil)
	if err != nil {
		return nil, err
	}
	switch resp.StatusCode {
	case 200:
	case 404:
		return nil, fmt.Errorf("changes %s: %w", id, ErrNoSuchContainer)
	default:
		return nil, unexpectedStatus("/containers/{id}/changes", resp.StatusCode)
	}
	var changes []Change
	if err := jsonx.Unmarshal(resp.Body, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// Remove deletes a stopped container.
func (r *Containers) Remove(ctx context.Context, id string) error {
	status, err := r.c.Delete(ctx, "/containers/"+id, nil)
	if err != nil {
		return err
	}
	switch status {
	case 200, 204:
		return nil
	case 404:
		return fmt.Errorf("remove %s: %w", id, ErrNoSuchContainer)
	case 409:
		return fmt.Errorf("remove %s: %w", id, ErrConflict)
	default:
		return unexpectedStatus("/containers/{id}", status)
	}
}

// signal issues one of the body-less lifecycle POSTs.
func (r *Containers) signal(ctx context.Context, id, action string, query url.Values) error {
	resp, err := r.c.Post(ctx, "/containers/"+id+"/"+action, query, nil)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case 200, 204:
		return nil
	case 304:
		return fmt.Errorf("%s %s: %w", action, id, ErrNotModified)
	case 404:
		return fmt.Errorf("%s %s: %w", action, id, ErrNoSuchContainer)
	default:
		return unexpectedStatus("/containers/{id}/"+action, resp.StatusCode)
	}
}

func waitQuery(timeoutSeconds int) url.Values {
	query := url.Values{}
	if timeoutSeconds > 0 {
		query.Set("t", strconv.Itoa(timeoutSeconds))
	}
	return query
}
