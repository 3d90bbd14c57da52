// Package activity joins borrow records with users and books for the
// borrowing-activity screen.
package activity

import (
	"sort"

	"github.com/dareenhdeya/iaProj/internal/domain"
)

// Entry is one borrow record resolved against its user and book.
type Entry struct {
	Record domain.BorrowRecord
	Book   domain.Book
}

// UserActivity groups a user's borrow history.
type UserActivity struct {
	User    domain.User
	Current []Entry // outstanding loans
	History []Entry // returned loans
}

// GroupByUser joins records against the user and book snapshots. Records
// whose user or book no longer exists are skipped rather than rendered as
// dangling rows. Users with no activity are omitted; groups come back sorted
// by user name for stable rendering.
func GroupByUser(records []domain.BorrowRecord, users []domain.User, books []domain.Book) []UserActivity {
	usersByID := make(map[int]domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	booksByID := make(map[int]domain.Book, len(books))
	for _, b := range books {
		booksByID[b.ID] = b
	}

	grouped := make(map[int]*UserActivity)
	for _, r := range records {
		user, ok := usersByID[r.UserID]
		if !ok {
			continue
		}
		book, ok := booksByID[r.BookID]
		if !ok {
			continue
		}
		ua, ok := grouped[user.ID]
		if !ok {
			ua = &UserActivity{User: user}
			grouped[user.ID] = ua
		}
		entry := Entry{Record: r, Book: book}
		if r.Returned() {
			ua.History = append(ua.History, entry)
		} else {
			ua.Current = append(ua.Current, entry)
		}
	}

	out := make([]UserActivity, 0, len(grouped))
	for _, ua := range grouped {
		out = append(out, *ua)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].User.Name != out[j].User.Name {
			return out[i].User.Name < out[j].User.Name
		}
		return out[i].User.ID < out[j].User.ID
	})
	return out
}
