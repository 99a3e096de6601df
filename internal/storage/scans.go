package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mwhitford/labelguard/internal/common"
	"github.com/mwhitford/labelguard/internal/model"
)

const defaultListLimit = 50

// SaveScan stores a completed compliance scan.
func (s *SQLiteStorage) SaveScan(ctx context.Context, scan *model.ScanRecord) error {
	if scan == nil {
		return fmt.Errorf("scan cannot be nil")
	}
	if scan.ID == "" {
		return fmt.Errorf("scan ID cannot be empty")
	}
	if scan.Report == nil {
		return fmt.Errorf("scan report cannot be nil")
	}
	if scan.CreatedAt.IsZero() {
		scan.CreatedAt = time.Now().UTC()
	}

	reportJSON, err := json.Marshal(scan.Report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scans (
			id, created_at, category, jurisdictions,
			input_text, score, risk_level, report
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		scan.ID,
		scan.CreatedAt,
		string(scan.Category),
		joinJurisdictions(scan.Jurisdictions),
		scan.Text,
		scan.Score,
		scan.RiskLevel,
		string(reportJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save scan: %w", err)
	}

	return nil
}

// GetScan retrieves a scan by ID.
func (s *SQLiteStorage) GetScan(ctx context.Context, id string) (*model.ScanRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("scan ID cannot be empty")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, category, jurisdictions,
		       input_text, score, risk_level, report
		FROM scans WHERE id = ?
	`, id)

	scan, err := scanRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scan %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}

	return scan, nil
}

// ListScans returns up to limit scans, newest first. The stored input text is
// omitted from listings to keep them small.
func (s *SQLiteStorage) ListScans(ctx context.Context, limit int) ([]*model.ScanRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, category, jurisdictions,
		       '', score, risk_level, report
		FROM scans
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var scans []*model.ScanRecord
	for rows.Next() {
		scan, err := scanRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to read scan row: %w", err)
		}
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scans: %w", err)
	}

	return scans, nil
}

// scanRow reads one scans row via the given Scan function.
func scanRow(scanFn func(...any) error) (*model.ScanRecord, error) {
	var (
		record        model.ScanRecord
		category      string
		jurisdictions string
		reportJSON    string
	)

	if err := scanFn(
		&record.ID,
		&record.CreatedAt,
		&category,
		&jurisdictions,
		&record.Text,
		&record.Score,
		&record.RiskLevel,
		&reportJSON,
	); err != nil {
		return nil, err
	}

	record.Category = model.Category(category)
	record.Jurisdictions = splitJurisdictions(jurisdictions)

	var report model.ComplianceReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	record.Report = &report

	return &record, nil
}

func joinJurisdictions(jurisdictions []model.Jurisdiction) string {
	parts := make([]string, len(jurisdictions))
	for i, j := range jurisdictions {
		parts[i] = string(j)
	}
	return strings.Join(parts, ",")
}

func splitJurisdictions(joined string) []model.Jurisdiction {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	jurisdictions := make([]model.Jurisdiction, len(parts))
	for i, p := range parts {
		jurisdictions[i] = model.Jurisdiction(p)
	}
	return jurisdictions
}
