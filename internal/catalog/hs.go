package catalog

import "strings"

// Heading is one entry of the HS/HTS reference table for auto parts.
type Heading struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// hsTable is the HS reference used for classification, validation and
// future expansion.
var hsTable = []Heading{
	{Code: "8708.30", Description: "Brakes and brake parts"},
	{Code: "8421.31", Description: "Air filters for internal combustion engines"},
	{Code: "8421.23", Description: "Oil filters for internal combustion engines"},
	{Code: "8511.10", Description: "Spark plugs"},
	{Code: "8708.80", Description: "Shock absorbers"},
	{Code: "4010.36", Description: "Transmission belts, timing belts"},
	{Code: "8484.20", Description: "Mechanical seals"},
	{Code: "8413.30", Description: "Fuel pumps for engines"},
	{Code: "8708.91", Description: "Radiators"},
	{Code: "8511.40", Description: "Starter motors"},
}

// Headings returns a copy of the HS reference table.
func Headings() []Heading {
	headings := make([]Heading, len(hsTable))
	copy(headings, hsTable)
	return headings
}

// HeadingFor resolves an HS code (full national code or 6-digit heading)
// to its reference entry.
func HeadingFor(code string) (Heading, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Heading{}, false
	}

	for _, h := range hsTable {
		if h.Code == code || strings.HasPrefix(code, h.Code) {
			return h, true
		}
	}
	return Heading{}, false
}
