package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// SubmissionSummary is the decoded content of a single Meldebestätigung.
// It is constructed in one piece by the parser and not modified afterwards.
type SubmissionSummary struct {
	Tan                 StringValue
	Code                StringValue
	Date                StringValue
	Counter             StringValue
	Ik                  Ik
	Datacenter          Datacenter
	TypDerMeldung       TypDerMeldung
	Indikationsbereich  Indikationsbereich
	Kostentraeger       Kostentraeger
	ArtDerDaten         ArtDerDaten
	ArtDerSequenzierung ArtDerSequenzierung
	Accepted            bool
	HashWert            StringValue

	// HashPayload is the canonical substring the claimed digest must cover,
	// byte for byte as it appeared in the record. It is never displayed.
	HashPayload string
}

// ValidHash reports whether the claimed digest matches the lowercase hex
// SHA-256 of the canonical payload. It is recomputed on every call, never
// stored, so it cannot drift from the payload.
func (s *SubmissionSummary) ValidHash() bool {
	sum := sha256.Sum256([]byte(s.HashPayload))
	return hex.EncodeToString(sum[:]) == s.HashWert.String()
}

// InvalidFieldCount counts the checked values that failed their structural
// or code-table check. Used for the audit trail, not for display.
func (s *SubmissionSummary) InvalidFieldCount() int {
	checked := []CheckedValue{
		s.Tan, s.Code, s.Date, s.Counter,
		s.Ik, s.Datacenter, s.TypDerMeldung, s.Indikationsbereich,
		s.Kostentraeger, s.ArtDerDaten, s.ArtDerSequenzierung,
		s.HashWert,
	}

	n := 0
	for _, v := range checked {
		if v.IsInvalid() {
			n++
		}
	}
	return n
}
