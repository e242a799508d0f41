//go:build windows

package notify

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// alertSound is the winsoundevent played with each toast.
const alertSound = "ms-winsoundevent:Notification.Mail"

// toastScript builds a ToastText02 toast from environment variables so
// title and body never pass through PowerShell quoting.
const toastScript = `
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$xml = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$texts = $xml.GetElementsByTagName('text')
$texts.Item(0).AppendChild($xml.CreateTextNode($env:NOTIFYME_TITLE)) | Out-Null
$texts.Item(1).AppendChild($xml.CreateTextNode($env:NOTIFYME_BODY)) | Out-Null
$audio = $xml.CreateElement('audio')
$audio.SetAttribute('src', $env:NOTIFYME_SOUND)
$xml.DocumentElement.AppendChild($audio) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($xml)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier($env:NOTIFYME_APP).Show($toast)
`

// Desktop sends alerts as Windows toast notifications via PowerShell.
type Desktop struct{}

func NewDesktop() (*Desktop, error) {
	return &Desktop{}, nil
}

func (d *Desktop) Close() error { return nil }

func (d *Desktop) Notify(ctx context.Context, title, body string) error {
	cmd := exec.CommandContext(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", toastScript)
	cmd.Env = append(os.Environ(),
		"NOTIFYME_TITLE="+title,
		"NOTIFYME_BODY="+body,
		"NOTIFYME_SOUND="+alertSound,
		"NOTIFYME_APP="+appName,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return &Error{Err: fmt.Errorf("powershell: %w: %s", err, strings.TrimSpace(string(out)))}
	}
	return nil
}
