package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"trackstat/internal/domain/workitem"
)

// Client resolves actor display names against the user-directory service.
// It implements workitem.ActorDirectory; callers treat a missing id in the
// result as non-fatal.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout),
	}
}

type userPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type resolveResponse struct {
	Users []userPayload `json:"users"`
}

func (c *Client) ResolveNames(ctx context.Context, ids []string) (map[string]workitem.DisplayInfo, error) {
	if len(ids) == 0 {
		return map[string]workitem.DisplayInfo{}, nil
	}

	var body resolveResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"ids": ids}).
		SetResult(&body).
		Post("/users/resolve")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("directory responded %d", resp.StatusCode())
	}

	out := make(map[string]workitem.DisplayInfo, len(body.Users))
	for _, u := range body.Users {
		out[u.ID] = workitem.DisplayInfo{
			ID:     u.ID,
			Name:   u.Name,
			Avatar: u.Avatar,
		}
	}
	return out, nil
}

// Noop is used when no directory service is configured; every actor row
// then renders with the id-only placeholder.
type Noop struct{}

func (Noop) ResolveNames(ctx context.Context, ids []string) (map[string]workitem.DisplayInfo, error) {
	return map[string]workitem.DisplayInfo{}, nil
}
