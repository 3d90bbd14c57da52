package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dareenhdeya/iaProj/internal/domain"
)

// bookExistsMessage is the exact message the server sends, with a 200, when
// a create hits a duplicate title. It is the only conflict signaled in-band.
const bookExistsMessage = "Book already exists"

// ListBooks returns the full catalog.
func (c *Client) ListBooks(ctx context.Context) ([]domain.Book, error) {
	var books []domain.Book
	if err := c.getJSON(ctx, "/admin/all-books", &books); err != nil {
		return nil, err
	}
	return books, nil
}

// AddBook creates a book. The server reports a duplicate as a 2xx with a
// "Book already exists" message rather than a conflict status, so the body
// must be inspected even on success.
func (c *Client) AddBook(ctx context.Context, book domain.Book) error {
	body, err := c.do(ctx, http.MethodPost, "/admin/add-book", book)
	if err != nil {
		return err
	}
	if message := parseMessage(body); message == bookExistsMessage {
		return &domain.ConflictError{Message: message}
	}
	return nil
}

// UpdateBook replaces the book with the given id.
func (c *Client) UpdateBook(ctx context.Context, id int, book domain.Book) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/update-book/%d", id), book)
	return err
}

// RemoveBook deletes the book with the given id.
func (c *Client) RemoveBook(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/remove-book/%d", id), nil)
	return err
}
