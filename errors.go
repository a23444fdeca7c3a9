package mdsite

import "errors"

// Sentinel errors for library operations.
var (
	// Template errors.
	ErrTemplateToken    = errors.New("template missing placeholder token")
	ErrTemplateNotFound = errors.New("template file not found")

	// Build errors.
	ErrContentDirNotFound = errors.New("content directory not found")
	ErrReadPage           = errors.New("failed to read page source")
	ErrWritePage          = errors.New("failed to write page")

	// Highlighting errors.
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")
)
