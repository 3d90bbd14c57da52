package components

import (
	"github.com/dareenhdeya/iaProj/internal/notify"
	"github.com/dareenhdeya/iaProj/internal/tui/styles"
)

// Toast renders the current notification, or an empty string when none is
// visible.
func Toast(n notify.Notification) string {
	if !n.Visible {
		return ""
	}
	if n.Severity == notify.SeverityError {
		return styles.ToastErrorStyle.Render(n.Message)
	}
	return styles.ToastSuccessStyle.Render(n.Message)
}
