// Package users exposes operations on the users resource of the backend API.
package users

import (
	"context"
	"net/http"

	"github.com/samvad-hq/samvad-users-client/pkg/api"
)

const (
	ResourcePath   = "users"
	CreateEndpoint = "/create"
)

// Client is bound to {baseURL}/users.
type Client struct {
	exec *api.Executor
}

// New creates a users client. Options are forwarded to the underlying executor.
func New(baseURL string, opts ...api.Option) *Client {
	return &Client{exec: api.New(baseURL, ResourcePath, opts...)}
}

// AddUser posts newUser as-is to /users/create.
func (c *Client) AddUser(ctx context.Context, newUser any) *api.Result {
	return c.exec.Request(ctx, CreateEndpoint, http.MethodPost, newUser)
}

// StartAddUser is the non-blocking form of AddUser.
func (c *Client) StartAddUser(ctx context.Context, newUser any) *api.Call {
	return c.exec.Start(ctx, CreateEndpoint, http.MethodPost, newUser)
}
