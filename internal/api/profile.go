package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dareenhdeya/iaProj/internal/domain"
)

// GetProfile fetches the admin profile with the given id.
func (c *Client) GetProfile(ctx context.Context, id int) (domain.Admin, error) {
	var admin domain.Admin
	if err := c.getJSON(ctx, fmt.Sprintf("/admin/viewProfile/%d", id), &admin); err != nil {
		return domain.Admin{}, err
	}
	return admin, nil
}

// UpdateProfile changes the signed-in admin's name and email, returning the
// server's confirmation message when it sends one.
func (c *Client) UpdateProfile(ctx context.Context, id int, draft domain.ProfileDraft) (string, error) {
	body, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/update-profile/%d", id), draft)
	if err != nil {
		return "", err
	}
	return parseMessage(body), nil
}

// AddAdmin creates another administrator account, returning the server's
// confirmation message when it sends one.
func (c *Client) AddAdmin(ctx context.Context, draft domain.AdminDraft) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/admin/add-admin", draft)
	if err != nil {
		return "", err
	}
	return parseMessage(body), nil
}
