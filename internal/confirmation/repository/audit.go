package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/meldehub/meldehub-backend/pkg/database"
)

// ParseAudit is one row of the parse audit trail: a compact record of a
// successfully decoded confirmation. The raw record text is deliberately
// not persisted.
type ParseAudit struct {
	ID             string    `db:"id"`
	Tan            string    `db:"tan"`
	Code           string    `db:"code"`
	SubmissionDate string    `db:"submission_date"`
	Datacenter     string    `db:"datacenter"`
	Accepted       bool      `db:"accepted"`
	DigestValid    bool      `db:"digest_valid"`
	InvalidFields  int       `db:"invalid_fields"`
	CreatedAt      time.Time `db:"created_at"`
}

// AuditRepository handles parse audit persistence
type AuditRepository struct {
	db *database.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *database.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create inserts a new audit entry
func (r *AuditRepository) Create(ctx context.Context, entry *ParseAudit) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO parse_audit (id, tan, code, submission_date, datacenter,
		                         accepted, digest_valid, invalid_fields)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		entry.ID,
		entry.Tan,
		entry.Code,
		entry.SubmissionDate,
		entry.Datacenter,
		entry.Accepted,
		entry.DigestValid,
		entry.InvalidFields,
	).Scan(&entry.CreatedAt)

	if err != nil {
		if appErr := database.MapPQError(err); appErr != nil {
			return appErr
		}
		return err
	}
	return nil
}

// List returns audit entries newest first, with pagination
func (r *AuditRepository) List(ctx context.Context, page, perPage int) ([]*ParseAudit, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM parse_audit`); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, tan, code, submission_date, datacenter,
		       accepted, digest_valid, invalid_fields, created_at
		FROM parse_audit
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	entries := []*ParseAudit{}
	if err := r.db.SelectContext(ctx, &entries, query, perPage, (page-1)*perPage); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
