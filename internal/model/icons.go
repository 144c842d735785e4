package model

// Glyphs used in console output and the built-in chooser.
// Single-width characters only, so columns stay aligned.
const (
	IconPinned  = "✦" // Pinned project URL
	IconOpen    = "→" // URL being opened
	IconSkipped = "✗" // Entry skipped
	IconGroup   = "◆" // URL group
	IconCursor  = "›" // Chooser cursor
)
