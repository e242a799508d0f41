// Package notify delivers desktop alerts for due events. Each platform
// carries its own delivery mechanism and alert sound behind build tags;
// the scheduler only sees the Notifier interface.
package notify

import "context"

// appName identifies the sender to the platform notification service.
const appName = "notifyme"

// appIcon is the icon hint attached to every alert.
const appIcon = "computer"

// Notifier dispatches a single human-visible alert. Delivery is
// fire-and-forget; a returned error means the platform call failed,
// not that the user missed the alert.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// Error wraps a platform delivery failure.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "notify: " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
