// Package model provides core data types for the daylily gallery.
package model

import "errors"

// Error types for gallery and curation operations
var (
	ErrVarietyNotFound   = errors.New("variety not found")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidBound      = errors.New("invalid numeric bound")
	ErrInvalidExpression = errors.New("invalid filter expression")
	ErrAlreadyPublished  = errors.New("variety already published")
	ErrNotPublished      = errors.New("variety not published")
	ErrNoDataset         = errors.New("no dataset found")
)
