package messaging

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Event types
const (
	// Confirmation events
	EventConfirmationParsed   = "confirmation.parsed"
	EventConfirmationRejected = "confirmation.rejected"
)

// Exchange names
const (
	ExchangeConfirmationEvents = "confirmation.events"
)

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            GenerateEventID(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// GenerateEventID creates a random hex event ID
func GenerateEventID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// ConfirmationParsedEvent is published when a confirmation record was
// decoded successfully. Field validity travels with the event so
// consumers do not have to re-parse.
type ConfirmationParsedEvent struct {
	ConfirmationID string `json:"confirmation_id"`
	Tan            string `json:"tan"`
	Code           string `json:"code"`
	Date           string `json:"date"`
	Datacenter     string `json:"datacenter"`
	Accepted       bool   `json:"accepted"`
	DigestValid    bool   `json:"digest_valid"`
	InvalidFields  int    `json:"invalid_fields"`
}

// ConfirmationRejectedEvent is published when a record failed structural
// parsing. The record text itself is not carried; it may contain data
// that must not leave the service.
type ConfirmationRejectedEvent struct {
	Reason string `json:"reason"`
	Size   int    `json:"size"`
}
