package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listora_admin/internal/catalog"
)

func TestTypeNeedCompleteRequiresSubType(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)
	assert.False(t, TypeNeedComplete(d)) // alt tip seçilmedi

	require.NoError(t, d.Merge(DraftUpdate{SubType: strPtr("Apartment")}))
	assert.True(t, TypeNeedComplete(d))

	// Boşluktan ibaret alt tip boş sayılır
	require.NoError(t, d.Merge(DraftUpdate{SubType: strPtr("   ")}))
	assert.False(t, TypeNeedComplete(d))
}

func TestTypeNeedCompleteLandNeedsNoSubType(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryLand)

	// Land: need otomatik tek değere iner, alt tipsiz geçerli
	assert.Equal(t, catalog.NeedBuy, d.Need)
	assert.True(t, TypeNeedComplete(d))
}

func TestTypeNeedCompleteRejectsForeignNeed(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryLand)
	need := catalog.NeedRent
	require.NoError(t, d.Merge(DraftUpdate{Need: &need}))
	assert.False(t, TypeNeedComplete(d))
}

func completeOverview(d *ListingDraft) {
	d.Merge(DraftUpdate{
		Title:    strPtr("3 Bedroom House in East Legon"),
		Price:    floatPtr(450000),
		Size:     floatPtr(320),
		Location: &Location{Country: "Ghana", City: "Accra"},
	})
}

func TestOverviewCompletePriceBoundary(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)
	completeOverview(d)
	assert.True(t, OverviewComplete(d))

	// Tam 0: henüz girilmedi sayılır
	require.NoError(t, d.Merge(DraftUpdate{Price: floatPtr(0)}))
	assert.False(t, OverviewComplete(d))

	// Sıfırın hemen üstü geçerli
	require.NoError(t, d.Merge(DraftUpdate{Price: floatPtr(1)}))
	assert.True(t, OverviewComplete(d))
}

func TestOverviewCompleteRequiredFields(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)
	completeOverview(d)

	require.NoError(t, d.Merge(DraftUpdate{Title: strPtr("  ")}))
	assert.False(t, OverviewComplete(d))
	completeOverview(d)

	require.NoError(t, d.Merge(DraftUpdate{Size: floatPtr(0)}))
	assert.False(t, OverviewComplete(d))
	completeOverview(d)

	require.NoError(t, d.Merge(DraftUpdate{Location: &Location{Country: "Ghana"}}))
	assert.False(t, OverviewComplete(d)) // şehir eksik
}

func TestServiceOverviewSkipsSize(t *testing.T) {
	d := NewDraft(catalog.KindService, catalog.CategoryHomeServices)
	d.Merge(DraftUpdate{
		Title:    strPtr("Deep Cleaning"),
		Price:    floatPtr(200),
		Location: &Location{Country: "Ghana", City: "Accra"},
	})

	assert.True(t, ServiceOverviewComplete(d))
	assert.False(t, OverviewComplete(d)) // size yok
}
