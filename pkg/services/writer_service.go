package services

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	"video-catalog/pkg/models"
)

// fs is the filesystem used for catalog files
var fs afero.Fs = afero.NewOsFs()

// SetFs replaces the filesystem used for catalog files
func SetFs(f afero.Fs) {
	fs = f
}

// Fs returns the filesystem used for catalog files
func Fs() afero.Fs {
	return fs
}

// EncodeCatalog renders a catalog as 2-space indented JSON without HTML or unicode escaping
func EncodeCatalog(catalog models.Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(catalog); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteCatalog writes the catalog to path in a single write
func WriteCatalog(path string, catalog models.Catalog) error {
	data, err := EncodeCatalog(catalog)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// DecodeCatalog parses catalog JSON
func DecodeCatalog(data []byte) (models.Catalog, error) {
	var catalog models.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return catalog, fmt.Errorf("decode catalog: %w", err)
	}
	return catalog, nil
}

// ReadCatalog parses a catalog file written by WriteCatalog
func ReadCatalog(path string) (models.Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("read %s: %w", path, err)
	}
	catalog, err := DecodeCatalog(data)
	if err != nil {
		return catalog, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// TotalVideos counts videos across all playlists
func TotalVideos(catalog models.Catalog) int {
	return lo.SumBy(catalog.Playlists, func(p models.Playlist) int {
		return len(p.Videos)
	})
}

// FlattenVideos returns every video in playlist order
func FlattenVideos(catalog models.Catalog) []models.Video {
	return lo.FlatMap(catalog.Playlists, func(p models.Playlist, _ int) []models.Video {
		return p.Videos
	})
}
