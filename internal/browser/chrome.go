package browser

import (
	"context"
	"fmt"
)

const (
	ChromeAppName = "Google Chrome"

	tabMenuName     = "Tab"
	pinTabMenuItem  = "Pin Tab"
	systemEventsApp = "System Events"
)

// PinAutomator pins a tab of the browser's front window.
type PinAutomator interface {
	PinTab(ctx context.Context, index int) error
}

// ChromePinner pins Chrome tabs by selecting them and clicking the
// "Pin Tab" menu item through System Events. It needs accessibility
// permission for the terminal running earl.
type ChromePinner struct {
	Runner Runner
}

// PinTab pins the tab at zero-based index in Chrome's front window.
func (p *ChromePinner) PinTab(ctx context.Context, index int) error {
	_, err := osascript(ctx, p.Runner, pinTabScript(index+1))
	return err
}

func pinTabScript(tabNum int) string {
	return fmt.Sprintf(`tell application %[1]s
	activate
	tell front window
		set active tab index to %[2]d
	end tell
end tell
delay 0.5
tell application %[3]s
	tell process %[1]s
		click menu item %[4]s of menu %[5]s of menu bar 1
	end tell
end tell
delay 0.2`,
		appleScriptString(ChromeAppName),
		tabNum,
		appleScriptString(systemEventsApp),
		appleScriptString(pinTabMenuItem),
		appleScriptString(tabMenuName),
	)
}

// chromeArgs builds the `open` invocation that starts a new Chrome window
// holding all urls at once.
func chromeArgs(profileDir string, urls []string) []string {
	args := []string{"-na", ChromeAppName, "--args"}
	if profileDir != "" {
		args = append(args, "--profile-directory="+profileDir)
	}
	args = append(args, "--new-window")
	return append(args, urls...)
}
