package warehouse

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Record status values persisted with every warehouse row.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Metadata is the envelope merged into every warehouse row. One envelope is
// generated per run so all rows of a run share a correlation id.
type Metadata struct {
	CreatedTS     time.Time
	CorrelationID string
	RecordStatus  string
}

// NewMetadata generates a run envelope: the current UTC time, a fresh
// correlation id and an ACTIVE status.
func NewMetadata() Metadata {
	id := uuid.New()
	return Metadata{
		CreatedTS:     time.Now().UTC(),
		CorrelationID: hex.EncodeToString(id[:]),
		RecordStatus:  StatusActive,
	}
}

// fields returns the base envelope columns.
func (m Metadata) fields() map[string]any {
	return map[string]any{
		"created_ts":     m.CreatedTS.Format(time.RFC3339Nano),
		"correlation_id": m.CorrelationID,
		"record_status":  m.RecordStatus,
	}
}

// withEffectiveDate extends the envelope with the run's effective date.
func (m Metadata) withEffectiveDate(effectiveDate time.Time) map[string]any {
	fields := m.fields()
	fields["effective_date"] = effectiveDate.Format("2006-01-02")
	return fields
}

// withValidFrom extends the envelope with the ingestion timestamp
// normalized to the minute.
func (m Metadata) withValidFrom() map[string]any {
	fields := m.fields()
	fields["valid_from"] = m.CreatedTS.Truncate(time.Minute).Format(time.RFC3339Nano)
	return fields
}
