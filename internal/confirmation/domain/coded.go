package domain

import "fmt"

// coded is the shared representation of a field decoded against a closed
// code table. Decoding is total: a code outside the table keeps its raw
// text and an empty label, which is the one and only invalid state.
type coded struct {
	code  string
	label string
}

func decode(code string, table map[string]string) coded {
	return coded{code: code, label: table[code]}
}

// Code returns the raw code exactly as it appeared in the record.
func (c coded) Code() string {
	return c.code
}

func (c coded) IsInvalid() bool {
	return c.label == ""
}

func (c coded) String() string {
	if c.label == "" {
		return fmt.Sprintf("Unbekannter Wert: '%s'", c.code)
	}
	return c.label
}
