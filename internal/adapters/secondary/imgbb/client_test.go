package imgbb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vehicle-checklist-service/internal/config"
	"vehicle-checklist-service/internal/core/domain"
)

func testClient(url string) *Client {
	return NewClient(config.ImageHostConfig{
		Endpoint: url,
		APIKey:   "test-key",
		Timeout:  5 * time.Second,
	})
}

func TestClient_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "test-key", r.PostFormValue("key"))
		assert.Equal(t, "aGVsbG8=", r.PostFormValue("image"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"url":"https://i.ibb.co/x/photo.jpg"}}`))
	}))
	defer srv.Close()

	url, err := testClient(srv.URL).Upload(context.Background(), "aGVsbG8=")
	assert.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/x/photo.jpg", url)
}

func TestClient_Upload_StripsDataURLPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "aGVsbG8=", r.PostFormValue("image"))
		_, _ = w.Write([]byte(`{"success":true,"data":{"url":"https://i.ibb.co/x/photo.jpg"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Upload(context.Background(), "data:image/jpeg;base64,aGVsbG8=")
	assert.NoError(t, err)
}

func TestClient_Upload_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Upload(context.Background(), "aGVsbG8=")
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestClient_Upload_UnsuccessfulEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Upload(context.Background(), "aGVsbG8=")
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestClient_Upload_EmptyPayload(t *testing.T) {
	_, err := testClient("http://unused.invalid").Upload(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}
