package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleTan    = "bad8a31b1759b565bee3d283e68af38e173499bfcce2f50691e7eddda62b2f31"
	sampleRecord = "Vorgangsnummer,Meldebestaetigung\n" + sampleTan +
		",IBE+A123456789+A123456789&20240701001&260530103&KDKK00001&0&O&9&1&C&2&1+9+" + sampleTan
)

func TestParse_FullRecord(t *testing.T) {
	summary, err := Parse(sampleRecord)
	require.NoError(t, err)

	assert.Equal(t, sampleTan, summary.Tan.String())
	assert.False(t, summary.Tan.IsInvalid())

	assert.Equal(t, "A123456789", summary.Code.String())
	assert.False(t, summary.Code.IsInvalid())

	assert.Equal(t, "2024-07-01", summary.Date.String())
	assert.False(t, summary.Date.IsInvalid())

	assert.Equal(t, "001", summary.Counter.String())
	assert.False(t, summary.Counter.IsInvalid())

	assert.Equal(t, "Universitätsklinikum Bonn (260530103)", summary.Ik.String())
	assert.False(t, summary.Ik.IsInvalid())

	assert.Equal(t, "KDKK00001", summary.Datacenter.Code())
	assert.True(t, summary.Datacenter.IsInvalid())
	assert.Equal(t, "Unbekannter Wert: 'KDKK00001'", summary.Datacenter.String())

	assert.Equal(t, "Erstmeldung", summary.TypDerMeldung.String())
	assert.Equal(t, "Onkologische Erkrankung", summary.Indikationsbereich.String())
	assert.Equal(t, "GKV", summary.Kostentraeger.String())
	assert.Equal(t, "Klinische Daten", summary.ArtDerDaten.String())
	assert.Equal(t, "WES", summary.ArtDerSequenzierung.String())
	assert.True(t, summary.Accepted)

	assert.Equal(t, sampleTan, summary.HashWert.String())
	assert.False(t, summary.HashWert.IsInvalid())
	assert.True(t, summary.ValidHash())
}

func TestParse_Idempotent(t *testing.T) {
	first, err := Parse(sampleRecord)
	require.NoError(t, err)

	second, err := Parse(sampleRecord)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParse_MutatedPayloadKeepsParsingButFailsDigest(t *testing.T) {
	record := "Vorgangsnummer,Meldebestaetigung\n" + sampleTan +
		",IBE+A999999999+A999999999&20240701001&260530103&KDKK00001&0&O&9&1&C&2&1+9+" + sampleTan

	summary, err := Parse(record)
	require.NoError(t, err)

	assert.Equal(t, "A999999999", summary.Code.String())
	assert.False(t, summary.ValidHash())
}

func TestParse_StructuralFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"missing body line", "Vorgangsnummer,Meldebestaetigung"},
		{"wrong header", "Vorgangsnummer;Meldebestaetigung\nabc,IBE+a+b&202407011&c&d&e&f&g&h&i&j&1+x+y"},
		{"header case mismatch", "vorgangsnummer,meldebestaetigung\nabc,IBE+a+b&202407011&c&d&e&f&g&h&i&j&1+x+y"},
		{"no comma in body", "Vorgangsnummer,Meldebestaetigung\nno-delimiters-here"},
		{"too many commas", "Vorgangsnummer,Meldebestaetigung\na,b,c"},
		{"wrong plus count", "Vorgangsnummer,Meldebestaetigung\nabc,IBE+a+b+c"},
		{"missing IBE literal", "Vorgangsnummer,Meldebestaetigung\nabc,XYZ+a+b&202407011&c&d&e&f&g&h&i&j&1+x+y"},
		{"too few ampersand fields", "Vorgangsnummer,Meldebestaetigung\nabc,IBE+a+b&202407011&c&d+x+y"},
		{"too many ampersand fields", "Vorgangsnummer,Meldebestaetigung\nabc,IBE+a+b&202407011&c&d&e&f&g&h&i&j&1&extra+x+y"},
		{"bad date counter token", "Vorgangsnummer,Meldebestaetigung\nabc,IBE+a+b&20240701&c&d&e&f&g&h&i&j&1+x+y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestParse_TrailingNewlineAndCarriageReturn(t *testing.T) {
	summary, err := Parse(sampleRecord + "\n")
	require.NoError(t, err)
	assert.True(t, summary.ValidHash())

	crlf := "Vorgangsnummer,Meldebestaetigung\r\n" + sampleTan +
		",IBE+A123456789+A123456789&20240701001&260530103&KDKK00001&0&O&9&1&C&2&1+9+" + sampleTan + "\r\n"
	summary, err = Parse(crlf)
	require.NoError(t, err)
	assert.True(t, summary.ValidHash())
}

func TestParse_ShortCounterIsInvalidButParses(t *testing.T) {
	record := "Vorgangsnummer,Meldebestaetigung\n" + sampleTan +
		",IBE+A123456789+A123456789&202407011&260530103&KDKK00001&0&O&9&1&C&2&1+9+" + sampleTan

	summary, err := Parse(record)
	require.NoError(t, err)

	assert.Equal(t, "2024-07-01", summary.Date.String())
	assert.Equal(t, "1", summary.Counter.String())
	assert.True(t, summary.Counter.IsInvalid())
}

func TestSplitDateAndNumber(t *testing.T) {
	tests := []struct {
		token   string
		date    string
		counter string
	}{
		{"202601011", "2026-01-01", "1"},
		{"2026010112", "2026-01-01", "12"},
		{"20260101123", "2026-01-01", "123"},
		{"20260109001", "2026-01-09", "001"},
		{"20260110001", "2026-01-10", "001"},
		{"20260111123", "2026-01-11", "123"},
		{"20260919123", "2026-09-19", "123"},
		{"20261020123", "2026-10-20", "123"},
		{"20261221123", "2026-12-21", "123"},
		{"20261231123", "2026-12-31", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			date, counter, ok := splitDateAndNumber(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.date, date)
			assert.Equal(t, tt.counter, counter)
		})
	}
}

func TestSplitDateAndNumber_Rejects(t *testing.T) {
	for _, token := range []string{
		"20260101",          // no counter digits
		"20260101123456789", // counter too long
		"260101001",         // wrong year prefix
		"202601010",         // counter ends in zero
		"20261301123",       // month out of range
		"20260132123",       // day out of range
		"",
		"irgendwas",
	} {
		t.Run(token, func(t *testing.T) {
			_, _, ok := splitDateAndNumber(token)
			assert.False(t, ok)
		})
	}
}

func TestDatePattern(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-01-01", true},
		{"2026-01-10", true},
		{"2026-10-12", true},
		{"2024-02-29", true},
		// Range check only: Feb 30 is within 01-31 and passes.
		{"2024-02-30", true},
		{"1800-01-01", false},
		{"2100-01-01", false},
		{"2026-13-01", false},
		{"2026-01-32", false},
		{"2026-23-35", false},
		{"2026-1-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, datePattern.MatchString(tt.date))
		})
	}
}

func TestCounterPattern(t *testing.T) {
	tests := []struct {
		counter string
		want    bool
	}{
		{"001", true},
		{"100", true},
		{"123", true},
		{"1", false},
		{"11", false},
		{"1234", false},
		{"12a", false},
	}

	for _, tt := range tests {
		t.Run(tt.counter, func(t *testing.T) {
			assert.Equal(t, tt.want, counterPattern.MatchString(tt.counter))
		})
	}
}

func TestHexDigestPattern_Unanchored(t *testing.T) {
	digest := sampleTan

	assert.True(t, hexDigestPattern.MatchString(digest))
	// Containment is enough; surrounding text does not break the match.
	assert.True(t, hexDigestPattern.MatchString("prefix"+digest+"suffix"))
	assert.False(t, hexDigestPattern.MatchString(digest[:63]))
	assert.False(t, hexDigestPattern.MatchString(""))
}
