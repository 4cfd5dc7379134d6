package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"listora_admin/internal/composer"
	"listora_admin/pkg/media"
)

var ErrNotFound = errors.New("record not found")

// Client pazaryeri REST API'sinin ince sarmalayıcısıdır. Transport
// hatalarını sunucunun mesajıyla yüzeye çıkarır, asla yeniden denemez.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	staging media.Store
}

func New(baseURL, apiKey string, timeout time.Duration, staging media.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		staging: staging,
	}
}

// SubmitListing assembled payload'u multipart form olarak gönderir.
// id alanı varsa PUT (update), yoksa POST (create) yapılır.
func (c *Client) SubmitListing(ctx context.Context, p *composer.Payload) error {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	for _, f := range p.Fields {
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return fmt.Errorf("could not write field %s: %w", f.Name, err)
		}
	}

	for _, file := range p.Files {
		if err := c.writeFilePart(ctx, mw, file); err != nil {
			return err
		}
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("could not finalize payload: %w", err)
	}

	method := http.MethodPost
	url := c.baseURL + "/listings"
	if p.IsUpdate() {
		method = http.MethodPut
		url = c.baseURL + "/listings/" + p.ListingID
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach marketplace API: %w", err)
	}
	defer resp.Body.Close()

	return checkResponse(resp)
}

// writeFilePart staging alanındaki dosyayı payload'a stream eder
func (c *Client) writeFilePart(ctx context.Context, mw *multipart.Writer, file composer.FilePart) error {
	src, err := c.staging.Open(ctx, file.Key)
	if err != nil {
		return fmt.Errorf("could not open staged media %s: %w", file.Key, err)
	}
	defer src.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.FileName))
	if file.ContentType != "" {
		h.Set("Content-Type", file.ContentType)
	}
	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("could not stream staged media %s: %w", file.Key, err)
	}
	return nil
}

// GetListing edit modu hydration'ı için mevcut ilan kaydını çeker
func (c *Client) GetListing(ctx context.Context, id string) (*composer.ListingRecord, error) {
	var rec composer.ListingRecord
	if err := c.doJSON(ctx, http.MethodGet, "/listings/"+id, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// doJSON gövdesi ve cevabı JSON olan istekler için ortak yoldur
func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not reach marketplace API: %w", err)
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode API response: %w", err)
	}
	return nil
}

// checkResponse hata cevabından insan okunur mesajı çıkarır
func checkResponse(resp *http.Response) error {
	if resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	var apiErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(data, &apiErr); err == nil {
		if apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		if apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
	}
	return fmt.Errorf("marketplace API returned status %d", resp.StatusCode)
}
