package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNeed(t *testing.T) {
	assert.Equal(t, NeedBuy, DefaultNeed(CategoryResidential))
	assert.Equal(t, NeedInvest, DefaultNeed(CategoryInvestment))
	assert.Equal(t, NeedBuy, DefaultNeed(CategoryLand))
	assert.Equal(t, NeedStay, DefaultNeed(CategoryFjord))
	assert.Equal(t, Need(""), DefaultNeed(Category("Unknown")))
}

func TestNeedsForCategory(t *testing.T) {
	assert.Equal(t, []Need{NeedBuy, NeedRent}, NeedsFor(CategoryResidential))
	assert.Equal(t, []Need{NeedBuy}, NeedsFor(CategoryLand))

	assert.True(t, ValidNeed(CategoryFjord, NeedStay))
	assert.False(t, ValidNeed(CategoryLand, NeedRent))
}

func TestSubTypeRequirement(t *testing.T) {
	assert.True(t, RequiresSubType(CategoryResidential))
	assert.False(t, RequiresSubType(CategoryLand))
	assert.False(t, RequiresSubType(CategoryFjord))

	assert.True(t, ValidSubType(CategoryResidential, "Apartment"))
	assert.False(t, ValidSubType(CategoryResidential, "Warehouse"))
}

func TestAmenitySets(t *testing.T) {
	assert.NotEmpty(t, GeneralAmenities())
	assert.NotEmpty(t, CategoryAmenities(CategoryResidential))
	assert.Empty(t, CategoryAmenities(Category("Unknown")))
}

func TestPaymentOptions(t *testing.T) {
	assert.NotEmpty(t, PaymentOptionsFor(NeedBuy))
	assert.NotEmpty(t, PaymentOptionsFor(NeedRent))
	assert.Empty(t, PaymentOptionsFor(NeedStay))
	assert.Empty(t, PaymentOptionsFor(NeedInvest))

	assert.True(t, ValidPaymentOption(NeedBuy, PaymentMortgage))
	assert.False(t, ValidPaymentOption(NeedRent, PaymentMortgage))
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, CanTransition(StatusUnpublished, StatusPublished))
	assert.True(t, CanTransition(StatusPublished, StatusClosed))
	assert.True(t, CanTransition(StatusArchived, StatusUnpublished))
	assert.False(t, CanTransition(StatusClosed, StatusPublished))
	assert.False(t, CanTransition(StatusUnpublished, StatusClosed))
}
