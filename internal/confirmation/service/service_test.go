package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meldehub/meldehub-backend/internal/confirmation/parser"
	"github.com/meldehub/meldehub-backend/internal/confirmation/repository"
	"github.com/meldehub/meldehub-backend/internal/confirmation/service"
	"github.com/meldehub/meldehub-backend/internal/confirmation/storage"
	apperrors "github.com/meldehub/meldehub-backend/pkg/errors"
	"github.com/meldehub/meldehub-backend/pkg/logger"
	"github.com/meldehub/meldehub-backend/pkg/messaging"
)

const (
	sampleTan    = "bad8a31b1759b565bee3d283e68af38e173499bfcce2f50691e7eddda62b2f31"
	sampleRecord = "Vorgangsnummer,Meldebestaetigung\n" + sampleTan +
		",IBE+A123456789+A123456789&20240701001&260530103&KDKK00001&0&O&9&1&C&2&1+9+" + sampleTan
)

type fakeAudit struct {
	entries   []*repository.ParseAudit
	createErr error
}

func (f *fakeAudit) Create(_ context.Context, entry *repository.ParseAudit) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAudit) List(_ context.Context, _, _ int) ([]*repository.ParseAudit, int64, error) {
	return f.entries, int64(len(f.entries)), nil
}

type fakePublisher struct {
	events []string
	data   []interface{}
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, eventType string, data interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, eventType)
	f.data = append(f.data, data)
	return nil
}

func newTestService(audit *fakeAudit, pub *fakePublisher) *service.Service {
	var auditStore service.AuditStore
	if audit != nil {
		auditStore = audit
	}
	var publisher service.EventPublisher
	if pub != nil {
		publisher = pub
	}
	return service.NewService(storage.New(time.Hour), auditStore, publisher, logger.New("test", "test"))
}

func TestService_Ingest(t *testing.T) {
	audit := &fakeAudit{}
	pub := &fakePublisher{}
	svc := newTestService(audit, pub)

	item, err := svc.Ingest(context.Background(), sampleRecord)
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "A123456789", item.Summary.Code.String())

	// Stored result is retrievable.
	got := svc.Get(item.ID)
	require.NotNil(t, got)
	assert.Same(t, item.Summary, got.Summary)

	// Audit entry mirrors the summary.
	require.Len(t, audit.entries, 1)
	entry := audit.entries[0]
	assert.Equal(t, item.ID, entry.ID)
	assert.Equal(t, "2024-07-01", entry.SubmissionDate)
	assert.Equal(t, "KDKK00001", entry.Datacenter)
	assert.True(t, entry.Accepted)
	assert.True(t, entry.DigestValid)
	assert.Equal(t, 1, entry.InvalidFields)

	// One parsed event.
	require.Equal(t, []string{messaging.EventConfirmationParsed}, pub.events)
	parsed, ok := pub.data[0].(messaging.ConfirmationParsedEvent)
	require.True(t, ok)
	assert.Equal(t, item.ID, parsed.ConfirmationID)
	assert.True(t, parsed.DigestValid)
}

func TestService_Ingest_MalformedRecord(t *testing.T) {
	audit := &fakeAudit{}
	pub := &fakePublisher{}
	svc := newTestService(audit, pub)

	item, err := svc.Ingest(context.Background(), "not a confirmation")
	assert.Nil(t, item)
	assert.ErrorIs(t, err, parser.ErrMalformedRecord)

	assert.Empty(t, audit.entries)
	assert.Equal(t, []string{messaging.EventConfirmationRejected}, pub.events)
}

func TestService_Ingest_WithoutAuditAndPublisher(t *testing.T) {
	svc := newTestService(nil, nil)

	item, err := svc.Ingest(context.Background(), sampleRecord)
	require.NoError(t, err)
	assert.NotNil(t, svc.Get(item.ID))
}

func TestService_Ingest_AuditFailureDoesNotFailIngest(t *testing.T) {
	audit := &fakeAudit{createErr: errors.New("db down")}
	svc := newTestService(audit, nil)

	item, err := svc.Ingest(context.Background(), sampleRecord)
	require.NoError(t, err)
	assert.NotNil(t, item)
}

func TestService_Ingest_PublishFailureDoesNotFailIngest(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := newTestService(nil, pub)

	item, err := svc.Ingest(context.Background(), sampleRecord)
	require.NoError(t, err)
	assert.NotNil(t, item)
}

func TestService_History(t *testing.T) {
	audit := &fakeAudit{}
	svc := newTestService(audit, nil)

	_, err := svc.Ingest(context.Background(), sampleRecord)
	require.NoError(t, err)

	entries, total, err := svc.History(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, entries, 1)
}

func TestService_History_Unconfigured(t *testing.T) {
	svc := newTestService(nil, nil)

	_, _, err := svc.History(context.Background(), 1, 20)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SERVICE_UNAVAILABLE", appErr.Code)
}
