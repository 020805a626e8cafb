package domain

// SKUKind — вид SKU по результату разбора.
type SKUKind string

const (
	SKUStandard    SKUKind = "standard"
	SKUFulfillment SKUKind = "fulfillment"
)

// Classification — результат успешной проверки SKU.
// Stages > 0 только для fulfillment SKU.
type Classification struct {
	Kind   SKUKind `json:"kind"`
	Stages int     `json:"stages,omitempty"`
	Suffix string  `json:"suffix"`
}

// IsFulfillment — true для fulfillment SKU.
func (c Classification) IsFulfillment() bool { return c.Kind == SKUFulfillment }

// SKUCheck — запрос на проверку SKU.
// Если MerchantCode пуст, код продавца определяется по OwnerID.
type SKUCheck struct {
	SKU          string `json:"sku"`
	MerchantCode string `json:"merchant_code,omitempty"`
	OwnerID      string `json:"owner_id,omitempty"`
}

// SKUReport — отчёт о корректном и уникальном SKU.
type SKUReport struct {
	SKU          string  `json:"sku"`
	MerchantCode string  `json:"merchant_code"`
	Kind         SKUKind `json:"kind"`
	Stages       int     `json:"stages,omitempty"`
	Suffix       string  `json:"suffix"`
}

// NewSKUReport — собирает отчёт из классификации.
func NewSKUReport(sku, merchantCode string, c Classification) *SKUReport {
	return &SKUReport{
		SKU:          sku,
		MerchantCode: merchantCode,
		Kind:         c.Kind,
		Stages:       c.Stages,
		Suffix:       c.Suffix,
	}
}
