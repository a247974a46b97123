// Package parser decodes the Meldebestätigung text record issued by the
// registry after a data submission. The record is a two-line document: a
// fixed header line and a body segmented by three nested delimiter layers
// (',', '+', '&'). The parser is a pure function over the input string.
package parser

import (
	"errors"
	"regexp"
	"strings"

	"github.com/meldehub/meldehub-backend/internal/confirmation/domain"
)

// ErrMalformedRecord is returned for every structural failure: missing
// header, wrong part count at any delimiter layer, or an unparseable
// date/counter token. Field-level problems do not produce this error;
// they are carried as invalid flags on the parsed values instead.
var ErrMalformedRecord = errors.New("malformed confirmation record")

const headerLine = "Vorgangsnummer,Meldebestaetigung"

var (
	// A TAN and the claimed digest merely have to contain a 64-hex run;
	// the pattern is deliberately unanchored.
	hexDigestPattern  = regexp.MustCompile(`[0-9a-fA-F]{64}`)
	counterPattern    = regexp.MustCompile(`^[0-9]{3}$`)
	datePattern       = regexp.MustCompile(`^20[0-9]{2}-(0[1-9]|1[0-2])-([0-2][0-9]|3[0-1])$`)
	dateNumberPattern = regexp.MustCompile(`^20[0-9]{2}(0[1-9]|1[0-2])([0-2][0-9]|3[0-1])[0-9]{0,2}[1-9]$`)
)

// Parse decodes a full confirmation record. It either returns a completely
// populated summary or ErrMalformedRecord; there is no partial result.
func Parse(text string) (*domain.SubmissionSummary, error) {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 || strings.TrimSuffix(lines[0], "\r") != headerLine {
		return nil, ErrMalformedRecord
	}

	body := strings.Split(strings.TrimSpace(lines[1]), ",")
	if len(body) != 2 {
		return nil, ErrMalformedRecord
	}
	tan := body[0]

	segments := strings.Split(body[1], "+")
	if len(segments) != 5 || segments[0] != "IBE" {
		return nil, ErrMalformedRecord
	}
	// segments[2] is the canonical substring the digest covers. It is kept
	// verbatim; the '&' split below reads it without consuming it.
	// segments[3] is required by the layout but carries no field.
	hashPayload := segments[2]
	hashWert := segments[4]

	fields := strings.Split(hashPayload, "&")
	if len(fields) != 11 {
		return nil, ErrMalformedRecord
	}

	date, counter, ok := splitDateAndNumber(fields[1])
	if !ok {
		return nil, ErrMalformedRecord
	}

	return &domain.SubmissionSummary{
		Tan:                 domain.NewStringValue(tan, !hexDigestPattern.MatchString(tan)),
		Code:                domain.NewValidString(fields[0]),
		Date:                domain.NewStringValue(date, !datePattern.MatchString(date)),
		Counter:             domain.NewStringValue(counter, !counterPattern.MatchString(counter)),
		Ik:                  domain.DecodeIk(fields[2]),
		Datacenter:          domain.DecodeDatacenter(fields[3]),
		TypDerMeldung:       domain.DecodeTypDerMeldung(fields[4]),
		Indikationsbereich:  domain.DecodeIndikationsbereich(fields[5]),
		Kostentraeger:       domain.DecodeKostentraeger(fields[7]),
		ArtDerDaten:         domain.DecodeArtDerDaten(fields[8]),
		ArtDerSequenzierung: domain.DecodeArtDerSequenzierung(fields[9]),
		Accepted:            fields[10] == "1",
		HashWert:            domain.NewStringValue(hashWert, !hexDigestPattern.MatchString(hashWert)),
		HashPayload:         hashPayload,
	}, nil
}

// splitDateAndNumber breaks the combined date+counter token into an ISO
// formatted date and the trailing sequence counter. The token is YYYYMMDD
// followed by 1-3 counter digits whose last digit is never zero. Date and
// counter always come as a pair; a token that does not match yields neither.
func splitDateAndNumber(token string) (date, counter string, ok bool) {
	if !dateNumberPattern.MatchString(token) {
		return "", "", false
	}

	date = token[0:4] + "-" + token[4:6] + "-" + token[6:8]
	counter = token[8:]
	return date, counter, true
}
