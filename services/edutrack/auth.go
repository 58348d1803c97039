package edusvc

import (
	"context"
	"net/http"

	"github.com/Pacchu9832/Edutrack-admin/core/school"
)

// LoginResult is the /auth/login success envelope.
type LoginResult struct {
	User  school.User `json:"user"`
	Token string      `json:"token"`
}

// Login exchanges credentials for a user and a bearer token. The caller is
// responsible for storing both in the session store.
func (c *Client) Login(ctx context.Context, creds school.Credentials) (LoginResult, error) {
	var result LoginResult
	err := c.send(ctx, http.MethodPost, "/auth/login", nil, creds, &result)
	return result, err
}
