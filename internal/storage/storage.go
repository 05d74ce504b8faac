// Package storage reads and writes daylily datasets stored as newline-delimited JSON.
package storage

import (
	"github.com/user/daylily/internal/model"
)

// Source provides the full record set for a session.
type Source interface {
	// ReadAll returns every record in source order.
	ReadAll() ([]*model.Daylily, error)
	// Path identifies the source in logs and messages.
	Path() string
}

var _ Source = (*Dataset)(nil)
