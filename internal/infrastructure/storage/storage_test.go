package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Upload(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewLocalStorageFs(fs, "/uploads/")

	url, err := s.Upload(context.Background(), "product/b-1/1700000000000-abc1234.jpg", "image/jpeg", []byte("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/product/b-1/1700000000000-abc1234.jpg", url)

	data, err := afero.ReadFile(fs, "/product/b-1/1700000000000-abc1234.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)
}

func TestLocalStorage_NoEscapaDelDirectorio(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewLocalStorageFs(fs, "/uploads")

	url, err := s.Upload(context.Background(), "../../etc/passwd", "image/jpeg", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/etc/passwd", url)

	_, err = s.Upload(context.Background(), "", "image/jpeg", []byte("x"))
	assert.Error(t, err)
}

func TestSupabaseStorage_Upload(t *testing.T) {
	var gotPath, gotAuth, gotType, gotUpsert string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotUpsert = r.Header.Get("x-upsert")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Key":"images/logo/b-1/x.jpg"}`))
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL+"/", "service-key", "images")
	url, err := s.Upload(context.Background(), "logo/b-1/x.jpg", "image/jpeg", []byte("data"))
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/images/logo/b-1/x.jpg", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "image/jpeg", gotType)
	assert.Equal(t, "true", gotUpsert)
	assert.Equal(t, []byte("data"), gotBody)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/images/logo/b-1/x.jpg", url)
}

func TestSupabaseStorage_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":"400","error":"Bad Request","message":"Bucket not found"}`))
	}))
	defer srv.Close()

	s := NewSupabaseStorage(srv.URL, "k", "missing")
	_, err := s.Upload(context.Background(), "logo/b/x.jpg", "image/jpeg", []byte("d"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bucket not found")
}

func TestSupabaseStorage_SinConfiguracion(t *testing.T) {
	s := NewSupabaseStorage("", "", "images")
	_, err := s.Upload(context.Background(), "logo/b/x.jpg", "image/jpeg", []byte("d"))
	assert.Error(t, err)
}
