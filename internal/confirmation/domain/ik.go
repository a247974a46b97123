package domain

// Ik identifies the submitting provider institution by its
// Institutionskennzeichen.
type Ik struct {
	coded
}

// ikLabels lists the university hospitals admitted to the Modellvorhaben.
var ikLabels = map[string]string{
	"260530012": "Universitätsklinikum Aachen (260530012)",
	"261101015": "Charité Universitätsmedizin Berlin (261101015)",
	"260590071": "Universitätsklinikum der Ruhr-Universität Bochum (260590071)",
	"260530103": "Universitätsklinikum Bonn (260530103)",
	"261401030": "Universitätsklinikum Carl Gustav Carus an der TU Dresden (261401030)",
	"260510018": "Universitätsklinikum Düsseldorf (260510018)",
	"260950567": "Universitätsklinikum Erlangen (260950567)",
	"260510381": "Universitätsklinikum Essen (260510381)",
	"260832299": "Universitätsklinikum Freiburg (260832299)",
	"260610279": "Universitätsklinikum Gießen und Marburg, Standort Gießen (260610279)",
	"260310378": "Universitätsmedizin Göttingen (260310378)",
	"261500702": "Universitätsklinikum Halle (261500702)",
	"260200013": "Universitätsklinikum Hamburg-Eppendorf (260200013)",
	"260320597": "Medizinische Hochschule Hannover (260320597)",
	"260820466": "Universitätsklinikum Heidelberg (260820466)",
	"261600736": "Universitätsklinikum Jena (261600736)",
	"260530283": "Universitätsklinikum Köln (260530283)",
	"261401052": "Universitätsklinikum Leipzig (261401052)",
	"260730161": "Universitätsmedizin Mainz (260730161)",
	"260620431": "Universitätsklinikum Gießen und Marburg, Standort Marburg (260620431)",
	"260914050": "Klinikum der Universität München (260914050)",
	"260913195": "Klinikum rechts der Isar der TU München/TUM-Klinikum (260913195)",
	"260550131": "Universitätsklinikum Münster (260550131)",
	"260930608": "Universitätsklinikum Regensburg (260930608)",
	"260102343": "Universitätsklinikum Schleswig-Holstein (260102343)",
	"260840108": "Universitätsklinikum Tübingen (260840108)",
	"260840200": "Universitätsklinikum Ulm (260840200)",
	"260960079": "Universitätsklinikum Würzburg (260960079)",
}

func DecodeIk(code string) Ik {
	return Ik{decode(code, ikLabels)}
}
