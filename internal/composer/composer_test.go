package composer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listora_admin/internal/catalog"
)

// stubGateway testlerde transport davranışını taklit eder
type stubGateway struct {
	err      error
	payloads []*Payload
}

func (g *stubGateway) SubmitListing(_ context.Context, p *Payload) error {
	g.payloads = append(g.payloads, p)
	return g.err
}

func readyComposer(t *testing.T, gw Gateway) *Composer {
	t.Helper()
	c, err := New(gw, catalog.KindProperty, catalog.CategoryResidential)
	require.NoError(t, err)
	require.NoError(t, c.Merge(DraftUpdate{SubType: strPtr("House")}))
	completeOverview(c.Draft())
	for !c.seq.AtEnd() {
		c.Advance()
	}
	return c
}

func TestSubmitRequiresConfirmation(t *testing.T) {
	c := readyComposer(t, &stubGateway{})

	err := c.Submit(context.Background(), false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	// Onay reddi taslağı ve adımı değiştirmez
	assert.Equal(t, 6, c.Step())
	assert.False(t, c.Closed())
}

func TestSubmitRequiresAllGates(t *testing.T) {
	gw := &stubGateway{}
	c, err := New(gw, catalog.KindProperty, catalog.CategoryResidential)
	require.NoError(t, err)

	err = c.Submit(context.Background(), true)
	assert.ErrorIs(t, err, ErrDraftIncomplete)
	assert.Empty(t, gw.payloads) // backend çağrısı yapılmadı
}

func TestSubmitFailureLeavesStateIntact(t *testing.T) {
	gw := &stubGateway{err: errors.New("server rejected the listing")}
	c := readyComposer(t, gw)
	title := c.Draft().Title

	err := c.Submit(context.Background(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server rejected")

	// Taslak ve adım aynen korunur, yeniden deneme mümkün
	assert.Equal(t, title, c.Draft().Title)
	assert.Equal(t, 6, c.Step())
	assert.False(t, c.Closed())
	assert.False(t, c.Submitting())

	// Düzeltilmiş ikinci deneme başarılı olur ve oturumu kapatır
	gw.err = nil
	require.NoError(t, c.Submit(context.Background(), true))
	assert.True(t, c.Closed())
}

func TestSubmitSuccessResetsState(t *testing.T) {
	gw := &stubGateway{}
	c := readyComposer(t, gw)

	require.NoError(t, c.Submit(context.Background(), true))

	assert.True(t, c.Closed())
	assert.Equal(t, 1, c.Step())
	assert.Empty(t, c.Draft().Title) // taslak varsayılanlara döndü
	require.Len(t, gw.payloads, 1)
}

func TestSubmitInFlightGuard(t *testing.T) {
	c := readyComposer(t, &stubGateway{})

	_, _, err := c.BeginSubmit(true)
	require.NoError(t, err)
	assert.True(t, c.Submitting())

	// Uçuş sırasında ikinci gönderim reddedilir
	_, _, err = c.BeginSubmit(true)
	assert.ErrorIs(t, err, ErrSubmitInFlight)
}

func TestStaleSubmissionIgnoredAfterCancel(t *testing.T) {
	c := readyComposer(t, &stubGateway{})

	_, generation, err := c.BeginSubmit(true)
	require.NoError(t, err)

	// Oturum uçuş sırasında kapatıldı
	c.Cancel()

	closed, err := c.FinishSubmit(generation, nil)
	assert.NoError(t, err)
	assert.False(t, closed) // bayat sonuç yok sayıldı
}

func TestMergeAfterClose(t *testing.T) {
	c := readyComposer(t, &stubGateway{})
	c.Cancel()

	assert.ErrorIs(t, c.Merge(DraftUpdate{Title: strPtr("x")}), ErrComposerClosed)
	_, _, err := c.BeginSubmit(true)
	assert.ErrorIs(t, err, ErrComposerClosed)
}

func TestNewForEditUsesRecordID(t *testing.T) {
	rec := ListingRecord{
		ID:       "listing-7",
		Category: string(catalog.CategoryResidential),
		Need:     string(catalog.NeedRent),
		SubType:  "Apartment",
		Title:    "Airport Residential Apartment",
		Price:    1200,
		Size:     90,
		Location: `{"country":"Ghana","city":"Accra"}`,
	}
	c := NewForEdit(&stubGateway{}, rec)

	assert.Equal(t, "listing-7", c.Draft().ID)
	assert.True(t, c.Submittable())

	payload, _, err := c.BeginSubmit(true)
	require.NoError(t, err)
	assert.True(t, payload.IsUpdate())
}

func TestNewRejectsUnknownCategory(t *testing.T) {
	_, err := New(&stubGateway{}, catalog.KindProperty, catalog.Category("Nope"))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
