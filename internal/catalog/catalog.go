// Package catalog holds the demo auto-parts catalog and the HS code
// reference table used for classification and declaration drafting.
package catalog

import "strings"

// Part describes one entry of the demo auto-parts catalog.
type Part struct {
	PartID          string `json:"part_id"`
	DescriptionEN   string `json:"description_en"`
	DescriptionTH   string `json:"description_th"`
	HSCode          string `json:"hs_code"`
	WCOCode         string `json:"wco_code"`
	DefaultQuantity int    `json:"default_quantity"`
	Unit            string `json:"unit"`
}

// demoParts is the built-in demo inventory. Can be expanded with real
// inventory later.
var demoParts = []Part{
	{PartID: "P001", DescriptionEN: "Front brake pads", DescriptionTH: "ผ้าเบรกหน้า", HSCode: "8708.30.50", WCOCode: "8708.30", DefaultQuantity: 2, Unit: "set"},
	{PartID: "P002", DescriptionEN: "Air filter", DescriptionTH: "ไส้กรองอากาศ", HSCode: "8421.31.00", WCOCode: "8421.31", DefaultQuantity: 1, Unit: "piece"},
	{PartID: "P003", DescriptionEN: "Oil filter", DescriptionTH: "ไส้กรองน้ำมันเครื่อง", HSCode: "8421.23.00", WCOCode: "8421.23", DefaultQuantity: 1, Unit: "piece"},
	{PartID: "P004", DescriptionEN: "Spark plugs", DescriptionTH: "หัวเทียน", HSCode: "8511.10.00", WCOCode: "8511.10", DefaultQuantity: 4, Unit: "piece"},
	{PartID: "P005", DescriptionEN: "Front shock absorber", DescriptionTH: "โช้คอัพหน้า", HSCode: "8708.80.35", WCOCode: "8708.80", DefaultQuantity: 2, Unit: "piece"},
	{PartID: "P006", DescriptionEN: "Timing belt", DescriptionTH: "สายพานไทม์มิ่ง", HSCode: "4010.36.00", WCOCode: "4010.36", DefaultQuantity: 1, Unit: "piece"},
	{PartID: "P007", DescriptionEN: "Oil seal", DescriptionTH: "ซีลน้ำมัน", HSCode: "8484.20.00", WCOCode: "8484.20", DefaultQuantity: 3, Unit: "piece"},
	{PartID: "P008", DescriptionEN: "Fuel pump", DescriptionTH: "ปั๊มน้ำมันเชื้อเพลิง", HSCode: "8413.30.10", WCOCode: "8413.30", DefaultQuantity: 1, Unit: "piece"},
	{PartID: "P009", DescriptionEN: "Radiator", DescriptionTH: "หม้อน้ำรถยนต์", HSCode: "8708.91.00", WCOCode: "8708.91", DefaultQuantity: 1, Unit: "piece"},
	{PartID: "P010", DescriptionEN: "Starter motor", DescriptionTH: "มอเตอร์สตาร์ท", HSCode: "8511.40.20", WCOCode: "8511.40", DefaultQuantity: 1, Unit: "piece"},
}

// Parts returns a copy of the demo catalog.
func Parts() []Part {
	parts := make([]Part, len(demoParts))
	copy(parts, demoParts)
	return parts
}

// FindPart returns the catalog entry with the given part ID, if any.
func FindPart(id string) (Part, bool) {
	for _, p := range demoParts {
		if strings.EqualFold(p.PartID, id) {
			return p, true
		}
	}
	return Part{}, false
}

// FilterParts returns catalog entries whose ID or description contains the
// query, case-insensitively. An empty query returns the full catalog.
func FilterParts(query string) []Part {
	if strings.TrimSpace(query) == "" {
		return Parts()
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var matched []Part
	for _, p := range demoParts {
		if strings.Contains(strings.ToLower(p.PartID), q) ||
			strings.Contains(strings.ToLower(p.DescriptionEN), q) ||
			strings.Contains(p.DescriptionTH, query) {
			matched = append(matched, p)
		}
	}
	return matched
}
