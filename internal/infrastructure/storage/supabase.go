package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
)

var _ ports.ObjectStorage = (*SupabaseStorage)(nil)

// SupabaseStorage adaptador que sube objetos al bucket público de Supabase Storage vía REST.
type SupabaseStorage struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// NewSupabaseStorage construye el adaptador. baseURL es la URL del proyecto (https://xyz.supabase.co).
func NewSupabaseStorage(baseURL, serviceKey, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type supabaseError struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// Upload sube el objeto (upsert) y devuelve su URL pública.
func (s *SupabaseStorage) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	if s.baseURL == "" || s.serviceKey == "" {
		return "", fmt.Errorf("storage: SUPABASE_URL o SUPABASE_SERVICE_KEY no configurado")
	}
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, strings.TrimLeft(path, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("storage: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "3600")
	req.Header.Set("x-upsert", "true")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: subir objeto: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var se supabaseError
		if json.Unmarshal(body, &se) == nil && se.Message != "" {
			return "", fmt.Errorf("storage: HTTP %d: %s", resp.StatusCode, se.Message)
		}
		return "", fmt.Errorf("storage: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return s.PublicURL(path), nil
}

// PublicURL URL pública de un objeto del bucket.
func (s *SupabaseStorage) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, strings.TrimLeft(path, "/"))
}
