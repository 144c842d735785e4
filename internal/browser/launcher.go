package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"earl/internal/model"
)

// DefaultSettleDelay is how long to wait for a new Chrome window to load
// before pinning tabs. Chrome gives no "window ready" signal.
const DefaultSettleDelay = 2 * time.Second

// Launcher opens URLs with one of three strategies: the system default
// handler, Chrome with a whole window at once, or Safari tab by tab.
//
// Launching is best-effort. Failures are logged and returned, never
// treated as fatal, since earl does not own the browser process.
type Launcher struct {
	Runner Runner
	Opener URLOpener
	Pinner PinAutomator
	// Profiles loads Chrome's profile map; only called when a profile
	// name needs resolving.
	Profiles func() model.ProfileMap
	Settle   time.Duration
	Log      *log.Logger
}

// NewLauncher wires a Launcher for the real OS.
func NewLauncher(r Runner, goos, localState string, logger *log.Logger) *Launcher {
	return &Launcher{
		Runner: r,
		Opener: DetectOpener(goos, r),
		Pinner: &ChromePinner{Runner: r},
		Profiles: func() model.ProfileMap {
			profiles, err := LoadProfiles(localState)
			if err != nil {
				logger.Warn("Could not read Chrome profiles", "err", err)
			}
			return profiles
		},
		Settle: DefaultSettleDelay,
		Log:    logger,
	}
}

// Open dispatches on kind. pinned holds indices into urls.
func (l *Launcher) Open(ctx context.Context, kind model.BrowserKind, urls []string, profile string, pinned []int) []error {
	switch kind {
	case model.BrowserChrome:
		return l.OpenChrome(ctx, urls, profile, pinned)
	case model.BrowserSafari:
		if len(pinned) > 0 {
			l.Log.Warn("Safari does not support programmatic tab pinning", "pinned", len(pinned))
		}
		return l.OpenSafari(ctx, urls)
	default:
		return l.OpenDefault(ctx, urls)
	}
}

// OpenDefault opens each URL with the default handler, in order.
func (l *Launcher) OpenDefault(ctx context.Context, urls []string) []error {
	var errs []error
	for _, u := range urls {
		if err := l.Opener.OpenURL(ctx, u); err != nil {
			l.Log.Warn("Could not open URL", "url", u, "err", err)
			errs = append(errs, err)
		}
	}
	return errs
}

// OpenChrome opens all urls in one new Chrome window, optionally in a
// profile, then pins the tabs at the pinned indices. Each pin is
// independent; a failed pin does not stop the others.
func (l *Launcher) OpenChrome(ctx context.Context, urls []string, profile string, pinned []int) []error {
	if len(urls) == 0 {
		return nil
	}

	dir := ""
	if profile != "" {
		dir = profile
		if !IsProfileDir(profile) && l.Profiles != nil {
			dir = ResolveProfile(profile, l.Profiles())
		}
		l.Log.Debug("Resolved Chrome profile", "input", profile, "dir", dir)
	}

	var errs []error
	if _, err := l.Runner.Run(ctx, OpenBin, chromeArgs(dir, urls)...); err != nil {
		l.Log.Warn("Could not launch Chrome", "err", err)
		errs = append(errs, err)
	}
	if len(pinned) == 0 {
		return errs
	}

	if err := sleep(ctx, l.Settle); err != nil {
		return append(errs, err)
	}

	for _, idx := range pinned {
		if idx < 0 || idx >= len(urls) {
			err := fmt.Errorf("pin index %d out of range", idx)
			l.Log.Warn("Could not pin tab", "tab", idx+1, "err", err)
			errs = append(errs, err)
			continue
		}
		if err := l.Pinner.PinTab(ctx, idx); err != nil {
			l.Log.Warn("Could not pin tab", "tab", idx+1, "err", err)
			errs = append(errs, fmt.Errorf("pin tab %d: %w", idx+1, err))
		}
	}
	return errs
}

// OpenSafari opens the first URL as a new Safari window and each remaining
// URL as a new tab of that window.
func (l *Launcher) OpenSafari(ctx context.Context, urls []string) []error {
	if len(urls) == 0 {
		return nil
	}

	var errs []error
	if _, err := osascript(ctx, l.Runner, safariNewDocumentScript(urls[0])); err != nil {
		l.Log.Warn("Could not open Safari window", "url", urls[0], "err", err)
		errs = append(errs, err)
	}
	for _, u := range urls[1:] {
		if _, err := osascript(ctx, l.Runner, safariNewTabScript(u)); err != nil {
			l.Log.Warn("Could not open Safari tab", "url", u, "err", err)
			errs = append(errs, err)
		}
	}
	return errs
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
