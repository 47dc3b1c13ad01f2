package services

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"video-catalog/pkg/models"
	"video-catalog/pkg/variants"
)

const (
	// DefaultIDLength is the length of a video identifier
	DefaultIDLength = 11
	// ThumbnailIDLength is the length of the token embedded in thumbnail URLs
	ThumbnailIDLength = 6

	idAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	thumbnailURLFmt = "https://picsum.photos/320/180?random=%s"
	dateLayout      = "2006-01-02"

	minViews, maxViews       = 30, 500
	minMinutes, maxMinutes   = 1, 15
	maxSeconds               = 59
	minTitleNum, maxTitleNum = 1, 9999
)

// Generator produces random catalog data for one variant.
// It is not safe for concurrent use.
type Generator struct {
	variant variants.Variant
	rnd     *rand.Rand
}

// NewGenerator creates a generator for the variant. A zero seed uses the current time.
func NewGenerator(variant variants.Variant, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		variant: variant,
		rnd:     rand.New(rand.NewSource(seed)),
	}
}

// Variant returns the variant the generator was built for
func (g *Generator) Variant() variants.Variant {
	return g.variant
}

// between returns a uniform integer in [lo, hi]
func (g *Generator) between(lo, hi int) int {
	return lo + g.rnd.Intn(hi-lo+1)
}

// Identifier returns length characters drawn with replacement from [A-Za-z0-9-_]
func (g *Generator) Identifier(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = idAlphabet[g.rnd.Intn(len(idAlphabet))]
	}
	return string(b)
}

// ViewCount returns an abbreviated view count like "245k"
func (g *Generator) ViewCount() string {
	return fmt.Sprintf("%dk", g.between(minViews, maxViews))
}

// Duration returns a video length formatted M:SS
func (g *Generator) Duration() string {
	minutes := g.between(minMinutes, maxMinutes)
	seconds := g.between(0, maxSeconds)
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// UploadDate returns a date within the variant's inclusive range, formatted YYYY-MM-DD
func (g *Generator) UploadDate() string {
	offset := g.between(0, g.variant.DateRangeDays())
	return g.variant.StartDate.AddDate(0, 0, offset).Format(dateLayout)
}

// Thumbnail returns a placeholder image URL with a random token
func (g *Generator) Thumbnail() string {
	return fmt.Sprintf(thumbnailURLFmt, g.Identifier(ThumbnailIDLength))
}

// title fills a template for the video at 0-based position i
func (g *Generator) title(template string, i int) string {
	num := i + 1
	if g.variant.Numbering == variants.Random {
		num = g.between(minTitleNum, maxTitleNum)
	}
	return strings.ReplaceAll(template, variants.Placeholder, strconv.Itoa(num))
}

// VideosForCategory generates count videos using the category's title templates.
// Unknown categories use the generic template pool.
func (g *Generator) VideosForCategory(category string, count int) []models.Video {
	if count < 0 {
		count = 0
	}
	templates := g.variant.Templates(category)
	videos := make([]models.Video, 0, count)

	for i := 0; i < count; i++ {
		template := templates[g.rnd.Intn(len(templates))]
		videos = append(videos, models.Video{
			ID:         g.Identifier(DefaultIDLength),
			Title:      g.title(template, i),
			Duration:   g.Duration(),
			Views:      g.ViewCount(),
			UploadDate: g.UploadDate(),
			Thumbnail:  g.Thumbnail(),
		})
	}

	return videos
}

// Playlist generates a single named playlist
func (g *Generator) Playlist(category string, count int) models.Playlist {
	return models.Playlist{
		Name:   category,
		Videos: g.VideosForCategory(category, count),
	}
}

// Catalog generates one playlist per variant category, in declaration order
func (g *Generator) Catalog(videosPerCategory int) models.Catalog {
	catalog := models.Catalog{
		Playlists: make([]models.Playlist, 0, len(g.variant.Categories)),
	}
	for _, name := range g.variant.CategoryNames() {
		catalog.Playlists = append(catalog.Playlists, g.Playlist(name, videosPerCategory))
	}
	return catalog
}
