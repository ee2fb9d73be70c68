package storage

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jhoicas/bravo-menu-api/internal/application/ports"
)

var _ ports.ObjectStorage = (*LocalStorage)(nil)

// LocalStorage guarda los objetos en un directorio servido como estático (desarrollo y demo).
type LocalStorage struct {
	fs        afero.Fs
	publicURL string
}

// NewLocalStorage guarda bajo dir en el disco real.
func NewLocalStorage(dir, publicURL string) *LocalStorage {
	return NewLocalStorageFs(afero.NewBasePathFs(afero.NewOsFs(), dir), publicURL)
}

// NewLocalStorageFs permite inyectar cualquier afero.Fs (en tests, afero.NewMemMapFs()).
func NewLocalStorageFs(fs afero.Fs, publicURL string) *LocalStorage {
	return &LocalStorage{fs: fs, publicURL: strings.TrimRight(publicURL, "/")}
}

// Upload escribe el objeto y devuelve su URL pública. El tipo de contenido lo decide la extensión.
func (s *LocalStorage) Upload(_ context.Context, objectPath, _ string, data []byte) (string, error) {
	clean := path.Clean("/" + objectPath)
	if clean == "/" {
		return "", fmt.Errorf("storage: ruta vacía")
	}
	name := filepath.FromSlash(clean)
	if err := s.fs.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return "", fmt.Errorf("storage: crear directorio: %w", err)
	}
	if err := afero.WriteFile(s.fs, name, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: escribir objeto: %w", err)
	}
	return s.publicURL + clean, nil
}
