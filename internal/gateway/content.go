package gateway

import (
	"context"
	"net/http"
)

// İçerik yönetimi ekranlarının (partnerler, ekip, ilanlar, politika
// sayfaları) basit CRUD geçişleri. Hepsi pazaryeri API'sine JSON ile gider.

type Partner struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
	Website string `json:"website"`
}

type TeamMember struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url"`
	Bio      string `json:"bio"`
}

type JobPost struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

type PolicyPage struct {
	ID    string `json:"id,omitempty"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (c *Client) ListPartners(ctx context.Context) ([]Partner, error) {
	var out []Partner
	err := c.doJSON(ctx, http.MethodGet, "/partners", nil, &out)
	return out, err
}

func (c *Client) CreatePartner(ctx context.Context, p Partner) (*Partner, error) {
	var out Partner
	if err := c.doJSON(ctx, http.MethodPost, "/partners", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePartner(ctx context.Context, id string, p Partner) error {
	return c.doJSON(ctx, http.MethodPut, "/partners/"+id, p, nil)
}

func (c *Client) DeletePartner(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/partners/"+id, nil, nil)
}

func (c *Client) ListTeamMembers(ctx context.Context) ([]TeamMember, error) {
	var out []TeamMember
	err := c.doJSON(ctx, http.MethodGet, "/team", nil, &out)
	return out, err
}

func (c *Client) CreateTeamMember(ctx context.Context, m TeamMember) (*TeamMember, error) {
	var out TeamMember
	if err := c.doJSON(ctx, http.MethodPost, "/team", m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTeamMember(ctx context.Context, id string, m TeamMember) error {
	return c.doJSON(ctx, http.MethodPut, "/team/"+id, m, nil)
}

func (c *Client) DeleteTeamMember(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/team/"+id, nil, nil)
}

func (c *Client) ListJobs(ctx context.Context) ([]JobPost, error) {
	var out []JobPost
	err := c.doJSON(ctx, http.MethodGet, "/jobs", nil, &out)
	return out, err
}

func (c *Client) CreateJob(ctx context.Context, j JobPost) (*JobPost, error) {
	var out JobPost
	if err := c.doJSON(ctx, http.MethodPost, "/jobs", j, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateJob(ctx context.Context, id string, j JobPost) error {
	return c.doJSON(ctx, http.MethodPut, "/jobs/"+id, j, nil)
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/jobs/"+id, nil, nil)
}

func (c *Client) ListPolicyPages(ctx context.Context) ([]PolicyPage, error) {
	var out []PolicyPage
	err := c.doJSON(ctx, http.MethodGet, "/policies", nil, &out)
	return out, err
}

func (c *Client) CreatePolicyPage(ctx context.Context, p PolicyPage) (*PolicyPage, error) {
	var out PolicyPage
	if err := c.doJSON(ctx, http.MethodPost, "/policies", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePolicyPage(ctx context.Context, id string, p PolicyPage) error {
	return c.doJSON(ctx, http.MethodPut, "/policies/"+id, p, nil)
}

func (c *Client) DeletePolicyPage(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/policies/"+id, nil, nil)
}
