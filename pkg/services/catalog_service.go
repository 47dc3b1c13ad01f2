package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"video-catalog/pkg/config"
	"video-catalog/pkg/models"
)

const catalogKey = "catalog"

// Service keeps a generated catalog around for the web server
type Service struct {
	config       *config.Config
	generator    *Generator
	catalogCache *cache.Cache
	mu           sync.Mutex
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	once           sync.Once
)

// NewService creates a service for the given configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		config:       cfg,
		generator:    NewGenerator(cfg.Variant, cfg.Seed),
		catalogCache: cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
	}
}

// InitService initializes the default service with the given configuration and returns it
func InitService(cfg *config.Config) *Service {
	once.Do(func() {
		defaultService = NewService(cfg)
	})
	return defaultService
}

// Config returns the configuration the service was built with
func (s *Service) Config() *config.Config {
	return s.config
}

// Variant returns the name of the variant being served
func (s *Service) Variant() string {
	return s.config.Variant.Name
}

// GetCatalog returns the cached catalog, generating a new one after expiry
func (s *Service) GetCatalog() models.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, found := s.catalogCache.Get(catalogKey); found {
		log.Debug("Using cached catalog")
		return cached.(models.Catalog)
	}

	log.Printf("Generating catalog: variant=%s videos_per_category=%d",
		s.config.Variant.Name, s.config.VideosPerCategory)
	catalog := s.generator.Catalog(s.config.VideosPerCategory)
	s.catalogCache.Set(catalogKey, catalog, cache.DefaultExpiration)
	return catalog
}

// Regenerate drops the cached catalog so the next read builds a fresh one
func (s *Service) Regenerate() {
	s.mu.Lock()
	s.catalogCache.Delete(catalogKey)
	s.mu.Unlock()
	log.Println("Catalog cache cleared")
}

// GetPlaylist returns a playlist from the cached catalog by name
func (s *Service) GetPlaylist(name string) (models.Playlist, error) {
	for _, playlist := range s.GetCatalog().Playlists {
		if strings.EqualFold(playlist.Name, name) {
			return playlist, nil
		}
	}
	return models.Playlist{}, fmt.Errorf("playlist not found: %s", name)
}

// GetVideos returns every cached video in playlist order
func (s *Service) GetVideos() []models.Video {
	return FlattenVideos(s.GetCatalog())
}

// SearchVideos matches titles case-insensitively, naturally sorted by title
func (s *Service) SearchVideos(query string) []models.Video {
	needle := strings.ToLower(strings.TrimSpace(query))
	matches := []models.Video{}
	for _, video := range FlattenVideos(s.GetCatalog()) {
		if strings.Contains(strings.ToLower(video.Title), needle) {
			matches = append(matches, video)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return naturalLess(matches[i].Title, matches[j].Title)
	})

	return matches
}

// PublishCatalog writes the cached catalog to the output file and uploads it,
// returning the bucket object name
func (s *Service) PublishCatalog(ctx context.Context) (string, error) {
	if err := s.config.RequireBucket(); err != nil {
		return "", err
	}

	catalog := s.GetCatalog()
	if err := WriteCatalog(s.config.OutputFile, catalog); err != nil {
		return "", err
	}

	data, err := EncodeCatalog(catalog)
	if err != nil {
		return "", err
	}

	object := ObjectName(s.config.OutputFile)
	if err := UploadCatalog(ctx, s.config.BucketName, object, data); err != nil {
		return "", err
	}
	return object, nil
}
