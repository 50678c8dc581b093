package helper

import (
	"catering_manager/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultSettings() model.PricingSettings {
	return model.PricingSettings{
		BasePax:             50,
		PricePerHead:        350,
		AdditionalItemPrice: 35,
	}
}

func TestComputeTotalWorkedExample(t *testing.T) {
	// 80 guests, 2 add-ons:
	// 17500 + 30*350 + 2*80*35 = 17500 + 10500 + 5600 = 33600
	total := ComputeTotal(80, 2, defaultSettings())
	assert.Equal(t, 33600.0, total)
}

func TestBasePriceFloorsAtBasePax(t *testing.T) {
	settings := defaultSettings()

	assert.Equal(t, settings.BasePrice(), BasePriceForGuests(50, settings))
	assert.Equal(t, settings.BasePrice(), BasePriceForGuests(30, settings))
	assert.Equal(t, settings.BasePrice()+350, BasePriceForGuests(51, settings))
}

func TestComputeTotalNoAddOns(t *testing.T) {
	total := ComputeTotal(50, 0, defaultSettings())
	assert.Equal(t, 17500.0, total)
}

func TestComputeTotalDeterministic(t *testing.T) {
	settings := defaultSettings()
	first := ComputeTotal(120, 3, settings)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeTotal(120, 3, settings))
	}
}

func TestComputeTotalMonotonicInGuests(t *testing.T) {
	settings := defaultSettings()
	prev := ComputeTotal(50, 1, settings)
	for guests := 51; guests <= 150; guests++ {
		current := ComputeTotal(guests, 1, settings)
		assert.Greater(t, current, prev, "total should grow with guest count at %d", guests)
		prev = current
	}
}

func TestComputeTotalMonotonicInAddOns(t *testing.T) {
	settings := defaultSettings()
	prev := ComputeTotal(80, 0, settings)
	for addOns := 1; addOns <= 5; addOns++ {
		current := ComputeTotal(80, addOns, settings)
		assert.Greater(t, current, prev)
		prev = current
	}
}

func TestCheckTotal(t *testing.T) {
	assert.NoError(t, CheckTotal(0))
	assert.NoError(t, CheckTotal(33600))
	assert.Error(t, CheckTotal(-1))
}
