// Package store provides durable project persistence.
package store

import (
	"context"
	"errors"

	"github.com/shivam5475/scriptai/internal/model"
)

// ErrNotFound is returned by Load when no record exists for the name.
var ErrNotFound = errors.New("project not found")

// Store defines durable storage for projects, keyed by project name.
type Store interface {
	// Save writes the full project record, replacing any previous one.
	// A concurrent reader never observes a partially written record.
	Save(ctx context.Context, p *model.Project) error

	// Load reads the record for name. Returns ErrNotFound if absent.
	Load(ctx context.Context, name string) (*model.Project, error)

	// Exists reports whether a record for name is present.
	Exists(name string) (bool, error)

	// List returns the names of all persisted projects, sorted.
	List(ctx context.Context) ([]string, error)
}
