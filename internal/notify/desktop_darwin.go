//go:build darwin

package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// alertSound is the system sound played with each notification.
const alertSound = "Submarine"

// Desktop sends alerts through the macOS Notification Center via
// osascript.
type Desktop struct{}

func NewDesktop() (*Desktop, error) {
	return &Desktop{}, nil
}

func (d *Desktop) Close() error { return nil }

// Notify shells out to osascript; the context bounds the call.
func (d *Desktop) Notify(ctx context.Context, title, body string) error {
	script := fmt.Sprintf("display notification %s with title %s sound name %s",
		appleScriptString(body), appleScriptString(title), appleScriptString(alertSound))
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return &Error{Err: fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))}
	}
	return nil
}

// appleScriptString quotes s as an AppleScript string literal.
func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
