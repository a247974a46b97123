package domain

// Datacenter identifies the receiving Genomrechenzentrum or klinischer
// Datenknoten.
type Datacenter struct {
	coded
}

var datacenterLabels = map[string]string{
	"GRZK00001": "GRZ Köln (GRZK00001)",
	"GRZTUE002": "GRZ Tübingen (GRZTUE002)",
	"GRZHD0003": "GRZ Heidelberg (GRZHD0003)",
	"GRZDD0004": "GRZ Dresden (GRZDD0004)",
	"GRZM00006": "GRZ München (GRZM00006)",
	"GRZB00007": "GRZ Berlin (GRZB00007)",
	"KDKDD0001": "Gfh-NET (KDKDD0001)",
	"KDKTUE002": "NSE (KDKTUE002)",
	"KDKL00003": "DK-FBREK (KDKL00003)",
	"KDKL00004": "DK-FDK (KDKL00004)",
	"KDKTUE005": "DNPM (KDKTUE005)",
	"KDKHD0006": "NCT/DKTK MASTER (KDKHD0006)",
	"KDKK00007": "nNGM (KDKK00007)",
}

func DecodeDatacenter(code string) Datacenter {
	return Datacenter{decode(code, datacenterLabels)}
}

// TypDerMeldung is the report type of the submission.
type TypDerMeldung struct {
	coded
}

var typDerMeldungLabels = map[string]string{
	"0": "Erstmeldung",
	"1": "Follow-Up",
	"2": "Nachmeldung",
	"3": "Korrektur",
	"9": "Testmeldung",
}

func DecodeTypDerMeldung(code string) TypDerMeldung {
	return TypDerMeldung{decode(code, typDerMeldungLabels)}
}

// Indikationsbereich is the clinical indication area of the case.
type Indikationsbereich struct {
	coded
}

var indikationsbereichLabels = map[string]string{
	"O": "Onkologische Erkrankung",
	"R": "Seltene Erkrankung",
	"H": "Hereditäres Tumorprädispositionssyndrom",
}

func DecodeIndikationsbereich(code string) Indikationsbereich {
	return Indikationsbereich{decode(code, indikationsbereichLabels)}
}

// Kostentraeger is the payer category of the insured person.
type Kostentraeger struct {
	coded
}

var kostentraegerLabels = map[string]string{
	"1": "GKV",
	"2": "PKV",
	"3": "PKV/Beihilfe",
	"4": "andere",
}

func DecodeKostentraeger(code string) Kostentraeger {
	return Kostentraeger{decode(code, kostentraegerLabels)}
}

// ArtDerDaten distinguishes clinical from genomic submissions.
type ArtDerDaten struct {
	coded
}

var artDerDatenLabels = map[string]string{
	"C": "Klinische Daten",
	"G": "genomische Daten",
}

func DecodeArtDerDaten(code string) ArtDerDaten {
	return ArtDerDaten{decode(code, artDerDatenLabels)}
}

// ArtDerSequenzierung is the sequencing method, or "Keine" for purely
// clinical submissions.
type ArtDerSequenzierung struct {
	coded
}

const sequenzierungKeineCode = "0"

var artDerSequenzierungLabels = map[string]string{
	sequenzierungKeineCode: "Keine",
	"1":                    "WGS",
	"2":                    "WES",
	"3":                    "Panel",
	"4":                    "WGS/LR",
}

func DecodeArtDerSequenzierung(code string) ArtDerSequenzierung {
	return ArtDerSequenzierung{decode(code, artDerSequenzierungLabels)}
}

// IsKeine reports whether the record declares no sequencing at all.
// Viewers flag this case separately from invalidity.
func (a ArtDerSequenzierung) IsKeine() bool {
	return a.code == sequenzierungKeineCode && !a.IsInvalid()
}
