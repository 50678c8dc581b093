package model

// PricingSettings is a singleton row: base package headcount, per-head rate
// and per-add-on rate. BasePrice is derived, never stored on its own.
type PricingSettings struct {
	DTO
	BasePax             int     `gorm:"not null;default:50" json:"basePax"`
	PricePerHead        float64 `gorm:"not null;default:350" json:"pricePerHead"`
	AdditionalItemPrice float64 `gorm:"not null;default:35" json:"additionalItemPrice"`
}

func (s PricingSettings) BasePrice() float64 {
	return float64(s.BasePax) * s.PricePerHead
}

type UpdatePricingInput struct {
	BasePax             *int     `validate:"omitempty,gt=0" json:"basePax"`
	PricePerHead        *float64 `validate:"omitempty,gt=0" json:"pricePerHead"`
	AdditionalItemPrice *float64 `validate:"omitempty,gte=0" json:"additionalItemPrice"`
}
