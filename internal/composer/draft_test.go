package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listora_admin/internal/catalog"
)

func strPtr(s string) *string          { return &s }
func floatPtr(f float64) *float64      { return &f }
func catPtr(c catalog.Category) *catalog.Category { return &c }

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)

	assert.Empty(t, d.ID)
	assert.Equal(t, catalog.NeedBuy, d.Need)
	assert.Equal(t, catalog.StatusUnpublished, d.Status)
	assert.Equal(t, catalog.CurrencyUSD, d.Currency)
	assert.NotNil(t, d.Photos)
	assert.NotNil(t, d.FAQs)
	assert.NotNil(t, d.LocalAmenities)
	assert.NotNil(t, d.PaymentOptions)
	assert.False(t, d.CreatedAt.IsZero())

	// Olanaklar: genel ∪ kategoriye özgü, hiçbiri seçili değil
	assert.NotEmpty(t, d.Amenities)
	for _, a := range d.Amenities {
		assert.False(t, a.Selected)
		assert.False(t, a.Custom)
	}
}

func TestMergeLastWriteWins(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)

	require.NoError(t, d.Merge(DraftUpdate{Title: strPtr("First")}))
	require.NoError(t, d.Merge(DraftUpdate{Title: strPtr("Second"), Price: floatPtr(250000)}))

	assert.Equal(t, "Second", d.Title)
	assert.Equal(t, 250000.0, d.Price)
	// İlgisiz alanlar dokunulmadan kalır
	assert.Equal(t, catalog.NeedBuy, d.Need)
	assert.Equal(t, catalog.CategoryResidential, d.Category)
}

func TestMergeLocationReplacedWhole(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)

	require.NoError(t, d.Merge(DraftUpdate{Location: &Location{Country: "Ghana", City: "Accra", Street: "Oxford St"}}))
	require.NoError(t, d.Merge(DraftUpdate{Location: &Location{Country: "Ghana", City: "Kumasi"}}))

	assert.Equal(t, "Kumasi", d.Location.City)
	// Sığ merge: location tam alt kayıt olarak değiştirilir
	assert.Empty(t, d.Location.Street)
}

func TestCategoryChangeResetsNeedAndSubType(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)
	need := catalog.NeedRent
	require.NoError(t, d.Merge(DraftUpdate{Need: &need, SubType: strPtr("Apartment")}))

	require.NoError(t, d.Merge(DraftUpdate{Category: catPtr(catalog.CategoryLand)}))

	assert.Equal(t, catalog.CategoryLand, d.Category)
	assert.Equal(t, catalog.NeedBuy, d.Need) // Land'in tek izin verilen değeri
	assert.Empty(t, d.SubType)
}

func TestCategoryChangeKeepsCustomAmenitiesAndSelection(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)
	custom := d.AddCustomAmenity("Borehole", "droplet")
	require.NoError(t, d.SetAmenitySelected("water", true))

	require.NoError(t, d.Merge(DraftUpdate{Category: catPtr(catalog.CategoryCommercial)}))

	var foundCustom, foundWater bool
	for _, a := range d.Amenities {
		if a.ID == custom.ID {
			foundCustom = true
			assert.True(t, a.Custom)
		}
		if a.ID == "water" {
			foundWater = true
			assert.True(t, a.Selected)
		}
	}
	assert.True(t, foundCustom)
	assert.True(t, foundWater)
}

func TestMergeUnknownCategory(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)
	bad := catalog.Category("Spaceship")
	assert.ErrorIs(t, d.Merge(DraftUpdate{Category: &bad}), ErrUnknownCategory)
}

func TestFAQAddRemoveRoundTrip(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)
	first := d.AddFAQ("Is there water?", "Yes")
	second := d.AddFAQ("Any parking?", "Two spaces")

	added := d.AddFAQ("Temporary?", "Yes")
	require.NoError(t, d.RemoveFAQ(added.ID))

	require.Len(t, d.FAQs, 2)
	assert.Equal(t, first.ID, d.FAQs[0].ID)
	assert.Equal(t, second.ID, d.FAQs[1].ID)
}

func TestFAQUpdateKeepsOrder(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)
	first := d.AddFAQ("Q1", "A1")
	second := d.AddFAQ("Q2", "A2")

	require.NoError(t, d.UpdateFAQ(first.ID, "Q1 edited", "A1 edited"))

	assert.Equal(t, "Q1 edited", d.FAQs[0].Question)
	assert.Equal(t, second.ID, d.FAQs[1].ID)
	assert.ErrorIs(t, d.UpdateFAQ("missing", "q", "a"), ErrEntryNotFound)
}

func TestLocalAmenityLifecycle(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)
	school := d.AddLocalAmenity("International School", 10)
	hospital := d.AddLocalAmenity("Hospital", 15)

	require.NoError(t, d.UpdateLocalAmenity(school.ID, "International School", 12))
	require.NoError(t, d.RemoveLocalAmenity(hospital.ID))

	require.Len(t, d.LocalAmenities, 1)
	assert.Equal(t, 12, d.LocalAmenities[0].MinutesDrive)
}

func TestRemoveCustomAmenityOnly(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)
	custom := d.AddCustomAmenity("Borehole", "droplet")

	assert.ErrorIs(t, d.RemoveCustomAmenity("water"), ErrNotCustom)
	require.NoError(t, d.RemoveCustomAmenity(custom.ID))
	assert.ErrorIs(t, d.RemoveCustomAmenity(custom.ID), ErrEntryNotFound)
}

func TestPhotoOrderPreservedOnRemove(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)
	d.AddPhoto(MediaRef{ID: "a", Key: "k/a.webp"})
	d.AddPhoto(MediaRef{ID: "b", Key: "k/b.webp"})
	d.AddPhoto(MediaRef{ID: "c", Key: "k/c.webp"})

	require.NoError(t, d.RemovePhoto("b"))

	require.Len(t, d.Photos, 2)
	assert.Equal(t, "a", d.Photos[0].ID)
	assert.Equal(t, "c", d.Photos[1].ID)
}

func TestMediaKeys(t *testing.T) {
	d := NewDraft(catalog.KindProperty, catalog.CategoryResidential)
	d.SetFrontImage(&MediaRef{ID: "f", Key: "k/front.webp"})
	d.AddPhoto(MediaRef{ID: "p", Key: "k/p.webp"})
	d.AddPhoto(MediaRef{ID: "remote", URL: "https://cdn.listora.com/old.webp"})

	keys := d.MediaKeys()
	assert.ElementsMatch(t, []string{"k/front.webp", "k/p.webp"}, keys)
}
