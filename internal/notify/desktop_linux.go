//go:build linux

package notify

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// alertSound is the freedesktop sound-naming-spec event played with
// each notification.
const alertSound = "message-new-instant"

const (
	notifyService   = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyInterface = "org.freedesktop.Notifications.Notify"
)

// Desktop sends alerts over the D-Bus session bus using the
// org.freedesktop.Notifications service.
type Desktop struct {
	conn *dbus.Conn
}

// NewDesktop opens a private session-bus connection for the lifetime of
// the daemon.
func NewDesktop() (*Desktop, error) {
	conn, err := dbus.SessionBusPrivate()
	if err != nil {
		return nil, &Error{Err: err}
	}
	if err := conn.Auth(nil); err != nil {
		conn.Close()
		return nil, &Error{Err: err}
	}
	if err := conn.Hello(); err != nil {
		conn.Close()
		return nil, &Error{Err: err}
	}
	return &Desktop{conn: conn}, nil
}

// Close releases the session-bus connection.
func (d *Desktop) Close() error {
	return d.conn.Close()
}

// Notify posts one notification and waits for the service to accept it.
func (d *Desktop) Notify(ctx context.Context, title, body string) error {
	obj := d.conn.Object(notifyService, notifyPath)
	call := obj.CallWithContext(ctx, notifyInterface, 0,
		appName,
		uint32(0), // replaces_id: always a fresh notification
		appIcon,
		title,
		body,
		[]string{}, // no actions
		map[string]dbus.Variant{"sound-name": dbus.MakeVariant(alertSound)},
		int32(-1), // server-default expiry
	)
	if call.Err != nil {
		return &Error{Err: call.Err}
	}
	return nil
}
