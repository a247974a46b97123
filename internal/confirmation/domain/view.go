package domain

// FieldView is the rendered form of one checked value: display text plus
// the flags a viewer needs to highlight it. Hint marks values that are
// valid but worth the user's attention (currently only "Keine" sequencing).
type FieldView struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Invalid bool   `json:"invalid"`
	Hint    bool   `json:"hint,omitempty"`
}

// SummaryView is the JSON projection of a SubmissionSummary. The QC result
// and the digest validity are derived pass/fail indicators, not fields.
type SummaryView struct {
	Fields      []FieldView `json:"fields"`
	Accepted    bool        `json:"accepted"`
	DigestValid bool        `json:"digest_valid"`
}

// View renders the summary for presentation. Field order matches the
// confirmation document layout.
func (s *SubmissionSummary) View() SummaryView {
	field := func(name, label string, v CheckedValue) FieldView {
		return FieldView{
			Name:    name,
			Label:   label,
			Value:   v.String(),
			Invalid: v.IsInvalid(),
		}
	}

	seq := field("art_der_sequenzierung", "Art der Sequenzierung", s.ArtDerSequenzierung)
	seq.Hint = s.ArtDerSequenzierung.IsKeine()

	return SummaryView{
		Fields: []FieldView{
			field("tan", "Tan", s.Tan),
			field("code", "Code", s.Code),
			field("datum", "Datum", s.Date),
			field("laufende_nummer", "Laufende Nummer", s.Counter),
			field("leistungserbringer", "Leistungserbringer", s.Ik),
			field("datenknoten", "Datenknoten", s.Datacenter),
			field("typ_der_meldung", "Typ der Meldung", s.TypDerMeldung),
			field("indikationsbereich", "Indikationsbereich", s.Indikationsbereich),
			field("kostentraeger", "Kostenträger", s.Kostentraeger),
			field("art_der_daten", "Art der Daten", s.ArtDerDaten),
			seq,
			field("sha256_hash", "Sha256-Hash", s.HashWert),
		},
		Accepted:    s.Accepted,
		DigestValid: s.ValidHash(),
	}
}
