package settings

import (
	"time"

	"tajer-be/internal/finance"
)

// Global is the singleton merchant-wide fee configuration row.
type Global struct {
	finance.GlobalSettings
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShippingCompany is one carrier and its optional fee override. All override
// groups are stored together; they only take effect when UseCustomFees is on.
type ShippingCompany struct {
	Name      string                  `json:"name"`
	Override  finance.CompanyOverride `json:"override"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}
