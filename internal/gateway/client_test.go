package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listora_admin/internal/catalog"
	"listora_admin/internal/composer"
	"listora_admin/pkg/media"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *media.LocalStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	staging, err := media.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	return New(srv.URL, "test-key", 5*time.Second, staging), staging
}

func TestSubmitListingCreate(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	var gotTitle, gotFileName string
	var gotFile []byte

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		require.NoError(t, r.ParseMultipartForm(10<<20))
		gotTitle = r.FormValue("title")

		file, header, err := r.FormFile("photos")
		require.NoError(t, err)
		defer file.Close()
		gotFileName = header.Filename
		gotFile, err = io.ReadAll(file)
		require.NoError(t, err)

		w.WriteHeader(http.StatusCreated)
	})
	client, staging := newTestClient(t, handler)

	ctx := context.Background()
	require.NoError(t, staging.Save(ctx, "s/p1.webp", "image/webp", strings.NewReader("img-bytes")))

	p := &composer.Payload{
		Fields: []composer.Field{{Name: "title", Value: "Test House"}},
		Files:  []composer.FilePart{{Field: "photos", FileName: "p1.webp", ContentType: "image/webp", Key: "s/p1.webp"}},
	}
	require.NoError(t, client.SubmitListing(ctx, p))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/listings", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "Test House", gotTitle)
	assert.Equal(t, "p1.webp", gotFileName)
	assert.Equal(t, "img-bytes", string(gotFile))
}

func TestSubmitListingUpdateUsesPut(t *testing.T) {
	var gotMethod, gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})
	client, _ := newTestClient(t, handler)

	p := &composer.Payload{
		ListingID: "listing-5",
		Fields:    []composer.Field{{Name: "id", Value: "listing-5"}},
	}
	require.NoError(t, client.SubmitListing(context.Background(), p))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/listings/listing-5", gotPath)
}

func TestSubmitListingSurfacesServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "price is below the minimum"})
	})
	client, _ := newTestClient(t, handler)

	err := client.SubmitListing(context.Background(), &composer.Payload{})
	require.Error(t, err)
	assert.Equal(t, "price is below the minimum", err.Error())
}

func TestGetListing(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listings/listing-9", r.URL.Path)
		json.NewEncoder(w).Encode(composer.ListingRecord{ID: "listing-9", Title: "Fetched"})
	})
	client, _ := newTestClient(t, handler)

	rec, err := client.GetListing(context.Background(), "listing-9")
	require.NoError(t, err)
	assert.Equal(t, "Fetched", rec.Title)
}

func TestGetListingNotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client, _ := newTestClient(t, handler)

	_, err := client.GetListing(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListListingsFilterQuery(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "published", r.URL.Query().Get("status"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(ListingPage{Total: 1, Page: 2, Listings: []composer.ListingRecord{{ID: "a"}}})
	})
	client, _ := newTestClient(t, handler)

	page, err := client.ListListings(context.Background(), ListingFilter{Status: catalog.StatusPublished, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Listings, 1)
}

func TestUpdateListingStatusChecksTransition(t *testing.T) {
	var patched bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(composer.ListingRecord{ID: "l1", Status: string(catalog.StatusClosed)})
		case r.Method == http.MethodPatch:
			patched = true
			w.WriteHeader(http.StatusOK)
		}
	})
	client, _ := newTestClient(t, handler)

	// closed durumundan geçiş yok
	err := client.UpdateListingStatus(context.Background(), "l1", catalog.StatusPublished)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "illegal status transition")
	assert.False(t, patched)
}

func TestUpdateListingStatusLegal(t *testing.T) {
	var gotBody map[string]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(composer.ListingRecord{ID: "l1", Status: string(catalog.StatusUnpublished)})
		case r.Method == http.MethodPatch:
			assert.Equal(t, "/listings/l1/status", r.URL.Path)
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
		}
	})
	client, _ := newTestClient(t, handler)

	require.NoError(t, client.UpdateListingStatus(context.Background(), "l1", catalog.StatusPublished))
	assert.Equal(t, "published", gotBody["status"])
}

func TestContentPassthrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/partners":
			json.NewEncoder(w).Encode([]Partner{{ID: "p1", Name: "Acme Homes"}})
		case r.Method == http.MethodPost && r.URL.Path == "/jobs":
			var j JobPost
			json.NewDecoder(r.Body).Decode(&j)
			j.ID = "j1"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(j)
		default:
			w.WriteHeader(http.StatusOK)
		}
	})
	client, _ := newTestClient(t, handler)
	ctx := context.Background()

	partners, err := client.ListPartners(ctx)
	require.NoError(t, err)
	require.Len(t, partners, 1)
	assert.Equal(t, "Acme Homes", partners[0].Name)

	job, err := client.CreateJob(ctx, JobPost{Title: "Agent"})
	require.NoError(t, err)
	assert.Equal(t, "j1", job.ID)

	require.NoError(t, client.DeletePolicyPage(ctx, "pol-1"))
}
