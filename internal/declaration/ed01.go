// Package declaration builds draft Thai Customs ED01 import declarations
// from invoice and transport document data.
package declaration

// ThaiExplanatoryBlock is the fixed Thai-language note attached to every
// draft, stating that the document is a preparatory ED01 draft only.
const ThaiExplanatoryBlock = "เอกสารฉบับนี้เป็นร่างใบขนสินค้านำเข้า (ED01) " +
	"จัดทำจากข้อมูลในใบกำกับสินค้าและเอกสารขนส่ง " +
	"เพื่อใช้ในการเตรียมการยื่นพิธีการศุลกากรเท่านั้น"

// Default tax rates for drafting. Overridable via configuration.
const (
	DefaultDutyRate = 0.05
	DefaultVATRate  = 0.07
)

// PayloadItem is one invoice line of an incoming drafting request.
type PayloadItem struct {
	Description   string  `json:"description"`
	HSCode        string  `json:"hs_code"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit,omitempty"`
	UnitPrice     float64 `json:"unit_price"`
	GrossWeightKG float64 `json:"gross_weight"`
}

// Payload carries the invoice and bill-of-lading data an ED01 draft is
// built from.
type Payload struct {
	Shipper       string        `json:"shipper"`
	Consignee     string        `json:"consignee"`
	InvoiceNo     string        `json:"invoice_no"`
	InvoiceDate   string        `json:"invoice_date"`
	Currency      string        `json:"currency"`
	Incoterm      string        `json:"incoterm"`
	OriginCountry string        `json:"origin_country"`
	PortLoading   string        `json:"port_loading"`
	PortDischarge string        `json:"port_discharge"`
	Items         []PayloadItem `json:"items"`
}

// Commodity is a normalized declaration line with its allocated weight.
type Commodity struct {
	Description       string  `json:"description"`
	HSCode            string  `json:"hs_code"`
	Quantity          float64 `json:"quantity"`
	Unit              string  `json:"unit,omitempty"`
	UnitPrice         float64 `json:"unit_price"`
	TotalValue        float64 `json:"total_value"`
	OriginCountry     string  `json:"origin_country,omitempty"`
	AllocatedWeightKG float64 `json:"allocated_weight_kg"`
}

// Parties identifies shipper and consignee.
type Parties struct {
	Shipper   string `json:"shipper"`
	Consignee string `json:"consignee"`
}

// Invoice summarizes the commercial invoice the draft was built from.
type Invoice struct {
	InvoiceNo    string  `json:"invoice_no"`
	InvoiceDate  string  `json:"invoice_date"`
	Currency     string  `json:"currency"`
	Incoterm     string  `json:"incoterm"`
	CustomsValue float64 `json:"customs_value"`
}

// Transport carries routing information.
type Transport struct {
	PortLoading   string `json:"port_loading"`
	PortDischarge string `json:"port_discharge"`
	OriginCountry string `json:"origin_country"`
}

// Taxes holds the computed import duty and VAT amounts.
type Taxes struct {
	ImportDuty float64 `json:"import_duty"`
	VAT        float64 `json:"vat"`
	TotalTaxes float64 `json:"total_taxes"`
}

// Weights reconciles declared gross weight against the allocated total.
type Weights struct {
	DeclaredGrossWeightKG  float64 `json:"declared_gross_weight_kg"`
	AllocatedTotalWeightKG float64 `json:"allocated_total_weight_kg"`
}

// ED01 is a draft Thai Customs import declaration.
type ED01 struct {
	Parties              Parties     `json:"parties"`
	Invoice              Invoice     `json:"invoice"`
	Transport            Transport   `json:"transport"`
	Commodities          []Commodity `json:"commodities"`
	Taxes                Taxes       `json:"taxes"`
	Weights              Weights     `json:"weights"`
	ThaiExplanatoryBlock string      `json:"thai_explanatory_block"`
	Narrative            string      `json:"narrative,omitempty"`
}

// Drafter produces ED01 drafts with configured tax rates.
type Drafter struct {
	dutyRate float64
	vatRate  float64
}

// NewDrafter returns a Drafter using the given duty and VAT rates. A rate
// of zero is taken verbatim: duty-exempt goods draft at 0%. Negative rates
// mean "unset" and fall back to the defaults.
func NewDrafter(dutyRate, vatRate float64) *Drafter {
	if dutyRate < 0 {
		dutyRate = DefaultDutyRate
	}
	if vatRate < 0 {
		vatRate = DefaultVATRate
	}
	return &Drafter{dutyRate: dutyRate, vatRate: vatRate}
}

// Draft builds an ED01 draft from the payload.
//
// Customs value is the sum of quantity * unit price over all lines. Import
// duty applies to the customs value; VAT applies to customs value plus duty.
// The declared gross weight (sum of line gross weights) is allocated across
// lines proportionally to customs value.
func (d *Drafter) Draft(payload Payload) ED01 {
	var totalWeight float64
	for _, item := range payload.Items {
		if item.GrossWeightKG > 0 {
			totalWeight += item.GrossWeightKG
		}
	}

	commodities := make([]Commodity, 0, len(payload.Items))
	for _, item := range payload.Items {
		commodities = append(commodities, Commodity{
			Description:   item.Description,
			HSCode:        item.HSCode,
			Quantity:      item.Quantity,
			Unit:          item.Unit,
			UnitPrice:     item.UnitPrice,
			TotalValue:    item.Quantity * item.UnitPrice,
			OriginCountry: payload.OriginCountry,
		})
	}

	commodities = AllocateWeights(commodities, totalWeight)

	var customsValue, allocatedTotal float64
	for _, c := range commodities {
		customsValue += c.TotalValue
		allocatedTotal += c.AllocatedWeightKG
	}

	duty := customsValue * d.dutyRate
	vat := (customsValue + duty) * d.vatRate

	return ED01{
		Parties: Parties{
			Shipper:   payload.Shipper,
			Consignee: payload.Consignee,
		},
		Invoice: Invoice{
			InvoiceNo:    payload.InvoiceNo,
			InvoiceDate:  payload.InvoiceDate,
			Currency:     payload.Currency,
			Incoterm:     payload.Incoterm,
			CustomsValue: round2(customsValue),
		},
		Transport: Transport{
			PortLoading:   payload.PortLoading,
			PortDischarge: payload.PortDischarge,
			OriginCountry: payload.OriginCountry,
		},
		Commodities: commodities,
		Taxes: Taxes{
			ImportDuty: round2(duty),
			VAT:        round2(vat),
			TotalTaxes: round2(duty + vat),
		},
		Weights: Weights{
			DeclaredGrossWeightKG:  totalWeight,
			AllocatedTotalWeightKG: round3(allocatedTotal),
		},
		ThaiExplanatoryBlock: ThaiExplanatoryBlock,
	}
}
