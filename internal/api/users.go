package api

import (
	"context"
	"net/http"
	"net/url"

	"report-console/internal/models"
)

type UserInput struct {
	Username string
	Email    string
	Password string
	Role     models.UserRole
}

// UserUpdate never carries the username: it is immutable after creation.
// A blank password leaves the stored one unchanged.
type UserUpdate struct {
	Email    string
	Password string
	Role     models.UserRole
}

func (u UserUpdate) Payload() map[string]any {
	return partial(
		field{"email", u.Email},
		field{"password", u.Password},
		field{"role", string(u.Role)},
	)
}

func (c *Client) ListUsers(ctx context.Context, page, limit int) (models.UserList, error) {
	var out models.UserList
	err := c.get(ctx, "/users", pageQuery(page, limit), &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, id string) (models.User, error) {
	var out models.User
	err := c.get(ctx, "/users/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, in UserInput) (string, error) {
	return c.create(ctx, "/users", models.NewUser{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	})
}

func (c *Client) UpdateUser(ctx context.Context, id string, u UserUpdate) error {
	return c.send(ctx, http.MethodPatch, "/users/"+url.PathEscape(id), u.Payload(), nil)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}
