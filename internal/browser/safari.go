package browser

import "fmt"

const SafariAppName = "Safari"

// Safari has no launch flag for opening several URLs, so the first URL
// becomes a new document and the rest are added as tabs one at a time.

func safariNewDocumentScript(url string) string {
	return fmt.Sprintf(`tell application %s
	activate
	make new document
	set URL of document 1 to %s
end tell`, appleScriptString(SafariAppName), appleScriptString(url))
}

func safariNewTabScript(url string) string {
	return fmt.Sprintf(`tell application %s
	tell window 1
		set current tab to (make new tab with properties {URL:%s})
	end tell
end tell`, appleScriptString(SafariAppName), appleScriptString(url))
}
