package service

import (
	"context"

	"github.com/meldehub/meldehub-backend/internal/confirmation/domain"
	"github.com/meldehub/meldehub-backend/internal/confirmation/parser"
	"github.com/meldehub/meldehub-backend/internal/confirmation/repository"
	"github.com/meldehub/meldehub-backend/internal/confirmation/storage"
	"github.com/meldehub/meldehub-backend/pkg/errors"
	"github.com/meldehub/meldehub-backend/pkg/logger"
	"github.com/meldehub/meldehub-backend/pkg/messaging"
)

// AuditStore persists the parse audit trail
type AuditStore interface {
	Create(ctx context.Context, entry *repository.ParseAudit) error
	List(ctx context.Context, page, perPage int) ([]*repository.ParseAudit, int64, error)
}

// EventPublisher publishes confirmation events
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// Service orchestrates confirmation processing: parse → store → audit →
// publish. Audit store and publisher are optional; a nil value degrades
// the step to log-only.
type Service struct {
	store     *storage.Store
	audit     AuditStore
	publisher EventPublisher
	log       *logger.Logger
}

// NewService creates a new confirmation service
func NewService(store *storage.Store, audit AuditStore, publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		store:     store,
		audit:     audit,
		publisher: publisher,
		log:       log,
	}
}

// Ingest parses a confirmation record, keeps the result available for
// rendering and records the attempt. A malformed record is an expected
// outcome: it is logged, published and returned, not treated as a
// service failure.
func (s *Service) Ingest(ctx context.Context, text string) (*storage.StoredConfirmation, error) {
	summary, err := parser.Parse(text)
	if err != nil {
		s.log.Warn().Err(err).Int("size", len(text)).Msg("confirmation record rejected")
		s.publish(ctx, messaging.EventConfirmationRejected, messaging.ConfirmationRejectedEvent{
			Reason: err.Error(),
			Size:   len(text),
		})
		return nil, err
	}

	item := s.store.Put(summary)

	s.writeAudit(ctx, item.ID, summary)

	s.publish(ctx, messaging.EventConfirmationParsed, messaging.ConfirmationParsedEvent{
		ConfirmationID: item.ID,
		Tan:            summary.Tan.String(),
		Code:           summary.Code.String(),
		Date:           summary.Date.String(),
		Datacenter:     summary.Datacenter.Code(),
		Accepted:       summary.Accepted,
		DigestValid:    summary.ValidHash(),
		InvalidFields:  summary.InvalidFieldCount(),
	})

	s.log.Info().
		Str("confirmation_id", item.ID).
		Str("code", summary.Code.String()).
		Bool("accepted", summary.Accepted).
		Bool("digest_valid", summary.ValidHash()).
		Int("invalid_fields", summary.InvalidFieldCount()).
		Msg("confirmation parsed")

	return item, nil
}

// Get retrieves a stored confirmation by ID
func (s *Service) Get(id string) *storage.StoredConfirmation {
	return s.store.Get(id)
}

// History lists the audit trail of parse attempts
func (s *Service) History(ctx context.Context, page, perPage int) ([]*repository.ParseAudit, int64, error) {
	if s.audit == nil {
		return nil, 0, errors.Unavailable("audit history is not configured")
	}
	return s.audit.List(ctx, page, perPage)
}

// writeAudit records a successful parse. Failures are logged, never
// propagated: the caller already has the parse result.
func (s *Service) writeAudit(ctx context.Context, id string, summary *domain.SubmissionSummary) {
	if s.audit == nil {
		return
	}

	entry := &repository.ParseAudit{
		ID:             id,
		Tan:            summary.Tan.String(),
		Code:           summary.Code.String(),
		SubmissionDate: summary.Date.String(),
		Datacenter:     summary.Datacenter.Code(),
		Accepted:       summary.Accepted,
		DigestValid:    summary.ValidHash(),
		InvalidFields:  summary.InvalidFieldCount(),
	}

	if err := s.audit.Create(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("confirmation_id", id).Msg("failed to write parse audit")
	}
}

func (s *Service) publish(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.log.Error().Err(err).Str("event_type", eventType).Msg("failed to publish event")
	}
}
