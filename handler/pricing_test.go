package handler

import (
	"catering_manager/model"
	"catering_manager/utils"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyPricingInputPartialUpdate(t *testing.T) {
	settings := model.PricingSettings{BasePax: 50, PricePerHead: 350, AdditionalItemPrice: 35}

	applyPricingInput(&settings, model.UpdatePricingInput{PricePerHead: utils.Ptr(400.0)})

	// The updated struct is what the handler echoes back, so it must carry
	// the new rate and leave the rest untouched.
	assert.Equal(t, 50, settings.BasePax)
	assert.Equal(t, 400.0, settings.PricePerHead)
	assert.Equal(t, 35.0, settings.AdditionalItemPrice)
	assert.Equal(t, 20000.0, settings.BasePrice())
}

func TestApplyPricingInputAllFields(t *testing.T) {
	settings := model.PricingSettings{BasePax: 50, PricePerHead: 350, AdditionalItemPrice: 35}

	applyPricingInput(&settings, model.UpdatePricingInput{
		BasePax:             utils.Ptr(60),
		PricePerHead:        utils.Ptr(380.0),
		AdditionalItemPrice: utils.Ptr(40.0),
	})

	assert.Equal(t, model.PricingSettings{BasePax: 60, PricePerHead: 380, AdditionalItemPrice: 40}, settings)
}

func TestApplyPricingInputEmptyInputIsNoop(t *testing.T) {
	settings := model.PricingSettings{BasePax: 50, PricePerHead: 350, AdditionalItemPrice: 35}
	before := settings

	applyPricingInput(&settings, model.UpdatePricingInput{})

	assert.Equal(t, before, settings)
}
