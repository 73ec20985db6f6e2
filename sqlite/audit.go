package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/auditkit/siteaudit"
)

// Compile-time interface verification.
var _ siteaudit.AuditService = (*AuditService)(nil)

// AuditService implements siteaudit.AuditService using SQLite.
type AuditService struct {
	db *DB
}

// NewAuditService creates a new AuditService.
func NewAuditService(db *DB) *AuditService {
	return &AuditService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateAudit persists a new audit snapshot and assigns its run ID.
func (s *AuditService) CreateAudit(ctx context.Context, audit *siteaudit.Audit) error {
	if err := audit.Validate(); err != nil {
		return err
	}

	audit.ID = uuid.New().String()
	audit.ContentHash = hashContent(audit.Text)
	if audit.FetchedAt.IsZero() {
		audit.FetchedAt = time.Now().UTC()
	}

	structure, err := json.Marshal(audit.Structure)
	if err != nil {
		return fmt.Errorf("failed to encode structure: %w", err)
	}
	scores, err := json.Marshal(audit.Scores)
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}
	accessibility, err := json.Marshal(audit.Accessibility)
	if err != nil {
		return fmt.Errorf("failed to encode accessibility: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audits (id, url, title, meta_description, content, content_hash, structure, scores, composite, accessibility, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, audit.ID, audit.URL, audit.Title, audit.MetaDescription, audit.Text, audit.ContentHash,
		string(structure), string(scores), audit.Composite, string(accessibility),
		audit.FetchedAt.Format(time.RFC3339))

	return err
}

// FindAuditByID retrieves an audit snapshot by run ID.
func (s *AuditService) FindAuditByID(ctx context.Context, id string) (*siteaudit.Audit, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, meta_description, content, content_hash, structure, scores, composite, accessibility, fetched_at
		FROM audits
		WHERE id = ?
	`, id)

	audit, err := scanAudit(row.Scan)
	if err == sql.ErrNoRows {
		return nil, siteaudit.Errorf(siteaudit.ENOTFOUND, "audit not found")
	}
	if err != nil {
		return nil, err
	}
	return audit, nil
}

// FindAudits retrieves audit snapshots matching the filter, newest first.
func (s *AuditService) FindAudits(ctx context.Context, filter siteaudit.AuditFilter) ([]*siteaudit.Audit, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, meta_description, content, content_hash, structure, scores, composite, accessibility, fetched_at FROM audits WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var audits []*siteaudit.Audit
	for rows.Next() {
		audit, err := scanAudit(rows.Scan)
		if err != nil {
			return nil, err
		}
		audits = append(audits, audit)
	}

	return audits, rows.Err()
}

// scanAudit reads one audits row, decoding the JSON columns back into
// their domain types.
func scanAudit(scan func(dest ...any) error) (*siteaudit.Audit, error) {
	var audit siteaudit.Audit
	var structure, scores, accessibility, fetchedAt string

	if err := scan(&audit.ID, &audit.URL, &audit.Title, &audit.MetaDescription, &audit.Text,
		&audit.ContentHash, &structure, &scores, &audit.Composite, &accessibility, &fetchedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(structure), &audit.Structure); err != nil {
		return nil, fmt.Errorf("failed to decode structure: %w", err)
	}
	if err := json.Unmarshal([]byte(scores), &audit.Scores); err != nil {
		return nil, fmt.Errorf("failed to decode scores: %w", err)
	}
	if err := json.Unmarshal([]byte(accessibility), &audit.Accessibility); err != nil {
		return nil, fmt.Errorf("failed to decode accessibility: %w", err)
	}

	var err error
	audit.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", err)
	}

	return &audit, nil
}
