package browser

import (
	"context"
)

// URLOpener hands a URL to the system's default handler.
type URLOpener interface {
	OpenURL(ctx context.Context, url string) error
}

// SystemOpener opens URLs with the platform's "open" command.
type SystemOpener struct {
	Runner Runner
	name   string
	args   []string
}

// DetectOpener picks the open command for goos, defaulting to xdg-open.
func DetectOpener(goos string, r Runner) *SystemOpener {
	switch goos {
	case "darwin":
		return &SystemOpener{Runner: r, name: OpenBin}
	case "windows":
		return &SystemOpener{Runner: r, name: "rundll32", args: []string{"url.dll,FileProtocolHandler"}}
	default:
		return &SystemOpener{Runner: r, name: "xdg-open"}
	}
}

func (o *SystemOpener) OpenURL(ctx context.Context, url string) error {
	args := make([]string, 0, len(o.args)+1)
	args = append(args, o.args...)
	args = append(args, url)
	_, err := o.Runner.Run(ctx, o.name, args...)
	return err
}
