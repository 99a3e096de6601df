// Package service defines the interfaces between the application's layers.
package service

import (
	"context"

	"github.com/mwhitford/labelguard/internal/model"
)

// ScanStore persists completed compliance checks.
type ScanStore interface {
	// SaveScan stores a completed scan. The caller supplies the ID and
	// creation time.
	SaveScan(ctx context.Context, scan *model.ScanRecord) error
	// GetScan retrieves a scan by ID, returning common.ErrNotFound when the
	// ID is unknown.
	GetScan(ctx context.Context, id string) (*model.ScanRecord, error)
	// ListScans returns up to limit scans, newest first. The input text is
	// omitted from listings.
	ListScans(ctx context.Context, limit int) ([]*model.ScanRecord, error)
	// Close releases the underlying database handle.
	Close() error
}
