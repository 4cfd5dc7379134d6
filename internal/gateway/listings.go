package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"listora_admin/internal/catalog"
	"listora_admin/internal/composer"
)

var ErrIllegalTransition = errors.New("illegal status transition")

// ListingFilter yönetim tablolarının liste filtreleridir
type ListingFilter struct {
	Status   catalog.Status
	Category catalog.Category
	Kind     catalog.ListingKind
	Page     int
	PerPage  int
}

// ListingPage sayfalanmış liste cevabıdır
type ListingPage struct {
	Listings []composer.ListingRecord `json:"listings"`
	Total    int                      `json:"total"`
	Page     int                      `json:"page"`
	PerPage  int                      `json:"per_page"`
}

// ListListings yönetim tablosu için ilanları listeler
func (c *Client) ListListings(ctx context.Context, filter ListingFilter) (*ListingPage, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if filter.Category != "" {
		q.Set("category", string(filter.Category))
	}
	if filter.Kind != "" {
		q.Set("kind", string(filter.Kind))
	}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(filter.PerPage))
	}

	path := "/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var page ListingPage
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdateListingStatus ilan durumunu değiştirir. Geçişin yasal olup
// olmadığını mevcut duruma bakarak kontrol eder.
func (c *Client) UpdateListingStatus(ctx context.Context, id string, to catalog.Status) error {
	rec, err := c.GetListing(ctx, id)
	if err != nil {
		return err
	}

	from := catalog.Status(rec.Status)
	if !catalog.CanTransition(from, to) {
		return fmt.Errorf("%w: %s to %s", ErrIllegalTransition, from, to)
	}

	body := map[string]string{"status": string(to)}
	return c.doJSON(ctx, http.MethodPatch, "/listings/"+id+"/status", body, nil)
}

// SetFeatured öne çıkarma bayrağını değiştirir
func (c *Client) SetFeatured(ctx context.Context, id string, featured bool) error {
	body := map[string]bool{"featured": featured}
	return c.doJSON(ctx, http.MethodPatch, "/listings/"+id+"/featured", body, nil)
}

// DeleteListing ilanı kalıcı olarak siler
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/listings/"+id, nil, nil)
}
