package models

// QuoteEstimate is the fully derived result of a quote calculation.
// It is always recomputed from the current selection, never partially updated.
type QuoteEstimate struct {
	Subtotal        float64 `json:"subtotal"`
	Discount        float64 `json:"discount"`
	DiscountPercent float64 `json:"discountPercent"`
	Total           float64 `json:"total"`
	ROIEstimate     float64 `json:"roiEstimate"`
}

// QuoteFormData carries a single lead submission from the quote calculator.
type QuoteFormData struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Company            string   `json:"company,omitempty"`
	JobTitle           string   `json:"jobTitle,omitempty"`
	Services           []string `json:"services"`
	Budget             string   `json:"budget"`
	Authority          string   `json:"authority"`
	Timeline           string   `json:"timeline"`
	AdditionalNotes    string   `json:"additionalNotes,omitempty"`
	ProjectDescription string   `json:"projectDescription,omitempty"`
	Source             string   `json:"source,omitempty"`
}
