package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dareenhdeya/iaProj/internal/collection"
	"github.com/dareenhdeya/iaProj/internal/domain"
	"github.com/dareenhdeya/iaProj/internal/log"
	"github.com/dareenhdeya/iaProj/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoster(t *testing.T, libs []domain.Librarian) *collection.Synchronizer[domain.Librarian] {
	t.Helper()
	sync := collection.New(collection.Config[domain.Librarian]{
		Name: "librarians",
		Fetch: func(ctx context.Context) ([]domain.Librarian, error) {
			return libs, nil
		},
	}, notify.NewChannel(), log.NullLogger())
	require.NoError(t, sync.Load(context.Background()))
	return sync
}

func TestEditFormPrefillsSelectedLibrarian(t *testing.T) {
	approved := newTestRoster(t, []domain.Librarian{
		{ID: 3, Name: "Jo Reader", Email: "jo@example.com", IsApproved: true},
	})
	pending := newTestRoster(t, nil)
	s := newLibrariansScreen(approved, pending, nil)

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})

	require.True(t, s.editForm.IsVisible())
	assert.Equal(t, "Jo Reader", s.editForm.Value("name"))
	assert.Equal(t, "jo@example.com", s.editForm.Value("email"))
}

func TestApprovalSuccessNotifiesAndReloads(t *testing.T) {
	approved := newTestRoster(t, nil)
	pending := newTestRoster(t, nil)
	s := newLibrariansScreen(approved, pending, nil)

	_, cmd := s.Update(ApprovalDoneMsg{Approved: true})

	n := approved.Notifier().Current()
	require.True(t, n.Visible)
	assert.Equal(t, "Librarian approved", n.Message)
	assert.Equal(t, notify.SeveritySuccess, n.Severity)
	assert.NotNil(t, cmd)
}

func TestRejectionSuccessNotifies(t *testing.T) {
	approved := newTestRoster(t, nil)
	pending := newTestRoster(t, nil)
	s := newLibrariansScreen(approved, pending, nil)

	_, cmd := s.Update(ApprovalDoneMsg{Approved: false})

	n := approved.Notifier().Current()
	require.True(t, n.Visible)
	assert.Equal(t, "Librarian rejected", n.Message)
	assert.NotNil(t, cmd)
}

func TestApprovalFailureSurfacesServerMessage(t *testing.T) {
	approved := newTestRoster(t, nil)
	pending := newTestRoster(t, nil)
	s := newLibrariansScreen(approved, pending, nil)

	_, cmd := s.Update(ApprovalDoneMsg{
		Approved: true,
		Err:      &domain.APIError{Status: 500, Message: "Cannot approve librarian"},
	})

	n := approved.Notifier().Current()
	require.True(t, n.Visible)
	assert.Equal(t, "Cannot approve librarian", n.Message)
	assert.Equal(t, notify.SeverityError, n.Severity)
	assert.Nil(t, cmd)
}

func TestRejectionFailureFallsBackToGenericMessage(t *testing.T) {
	approved := newTestRoster(t, nil)
	pending := newTestRoster(t, nil)
	s := newLibrariansScreen(approved, pending, nil)

	_, _ = s.Update(ApprovalDoneMsg{Approved: false, Err: domain.ErrServerUnreachable})

	n := approved.Notifier().Current()
	require.True(t, n.Visible)
	assert.Equal(t, "Failed to reject librarian", n.Message)
	assert.Equal(t, notify.SeverityError, n.Severity)
}
