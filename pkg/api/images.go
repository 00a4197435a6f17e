package api

import (
	"context"
	"net/url"

	"github.com/MisterDA/godocker/pkg/client"
	"github.com/MisterDA/godocker/pkg/jsonx"
)

// Image is one entry of the daemon's image listing.
type Image struct {
	ID          string `json:"Id"`
	ParentID    string `json:"ParentId"`
	RepoTags    []string
	Created     int64
	Size        int64
	VirtualSize int64
}

// Images is the image resource client.
type Images struct {
	c *client.Client
}

// List returns the daemon's images; with all set, intermediate layers too.
func (r *Images) List(ctx context.Context, all bool) ([]Image, error) {
	query := url.Values{}
	if all {
		query.Set("all", "1")
	}
	resp, err := r.c.Get(ctx, "/images/json", query)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != 200 {
		return nil, unexpectedStatus("/images/json", resp.StatusCode)
	}
	var images []Image
	if err := jsonx.Unmarshal(resp.Body, &images); err != nil {
		return nil, err
	}
	return images, nil
}
