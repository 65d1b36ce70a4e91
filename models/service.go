package models

// ServiceCategory classifies entries of the service catalog.
type ServiceCategory string

const (
	CategoryPrinting ServiceCategory = "Printing"
	CategoryBranding ServiceCategory = "Branding"
	CategoryDigital  ServiceCategory = "Digital"
	CategorySignage  ServiceCategory = "Signage"
	CategoryWeb      ServiceCategory = "Web"
)

// Service is a single catalog entry. The catalog is static configuration
// defined at deploy time; it is never mutated at runtime.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ServiceCategory `json:"category"`
	BasePrice   float64         `json:"basePrice"`
	MaxPrice    float64         `json:"maxPrice"`
	Turnaround  string          `json:"turnaround"`
	Popular     bool            `json:"popular,omitempty"`
	Description string          `json:"description,omitempty"`
}
