package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dareenhdeya/iaProj/internal/domain"
)

// ListLibrarians returns all librarian accounts, approved or not.
func (c *Client) ListLibrarians(ctx context.Context) ([]domain.Librarian, error) {
	var librarians []domain.Librarian
	if err := c.getJSON(ctx, "/admin/librarians", &librarians); err != nil {
		return nil, err
	}
	return librarians, nil
}

// ListPendingLibrarians returns librarians awaiting approval.
func (c *Client) ListPendingLibrarians(ctx context.Context) ([]domain.Librarian, error) {
	var librarians []domain.Librarian
	if err := c.getJSON(ctx, "/admin/pending-librarians", &librarians); err != nil {
		return nil, err
	}
	return librarians, nil
}

// AddLibrarian creates a librarian account.
func (c *Client) AddLibrarian(ctx context.Context, draft domain.LibrarianDraft) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/add-librarian", draft)
	return err
}

// ApproveLibrarian moves a pending librarian into the approved set.
func (c *Client) ApproveLibrarian(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/approve-librarian/%d", id), nil)
	return err
}

// RejectLibrarian declines a pending application. The server expects the
// rejection reason as a bare JSON string body.
func (c *Client) RejectLibrarian(ctx context.Context, id int, reason string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/reject-librarian/%d", id), reason)
	return err
}

// UpdateLibrarian changes an approved librarian's name and email.
func (c *Client) UpdateLibrarian(ctx context.Context, id int, update domain.LibrarianUpdate) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/update-librarian/%d", id), update)
	return err
}

// RemoveLibrarian deletes a librarian account.
func (c *Client) RemoveLibrarian(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/remove-librarian/%d", id), nil)
	return err
}
