package variants

import (
	"fmt"
	"sort"
	"time"
)

// Numbering controls what replaces the #{num} placeholder in a title template
type Numbering int

const (
	// Sequential substitutes the 1-based position of the video in its playlist
	Sequential Numbering = iota
	// Random substitutes a fresh integer in [1, 9999]
	Random
)

// String returns the numbering mode name
func (n Numbering) String() string {
	switch n {
	case Sequential:
		return "sequential"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("numbering(%d)", int(n))
	}
}

// Placeholder is the token replaced in every title template
const Placeholder = "#{num}"

// GenericTemplates is used for categories a variant does not know about
var GenericTemplates = []string{"Generic Video #{num}"}

// Category is a named pool of title templates
type Category struct {
	Name      string
	Templates []string
}

// Variant describes one flavour of generated catalog
type Variant struct {
	Name         string
	Categories   []Category
	StartDate    time.Time
	EndDate      time.Time
	Numbering    Numbering
	DefaultCount int
	// CountFromEnv is false when the per-category count is fixed
	CountFromEnv bool
	OutputFile   string
}

// CategoryNames returns category names in declaration order
func (v Variant) CategoryNames() []string {
	names := make([]string, 0, len(v.Categories))
	for _, c := range v.Categories {
		names = append(names, c.Name)
	}
	return names
}

// Templates returns the template pool for a category, falling back to GenericTemplates
func (v Variant) Templates(category string) []string {
	for _, c := range v.Categories {
		if c.Name == category {
			return c.Templates
		}
	}
	return GenericTemplates
}

// HasCategory reports whether the category is part of the variant
func (v Variant) HasCategory(category string) bool {
	for _, c := range v.Categories {
		if c.Name == category {
			return true
		}
	}
	return false
}

// DateRangeDays returns the number of whole days between StartDate and EndDate
func (v Variant) DateRangeDays() int {
	return int(v.EndDate.Sub(v.StartDate).Hours() / 24)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// DefaultName is the variant used when none is configured
const DefaultName = "streaming"

var registry = map[string]Variant{
	"streaming": {
		Name: "streaming",
		Categories: []Category{
			{Name: "Trending", Templates: []string{
				"Viral Dance Challenge #{num}",
				"Amazing Talent Show Performance #{num}",
				"Trending Music Cover #{num}",
				"Popular Comedy Skit #{num}",
				"Viral Pet Video #{num}",
			}},
			{Name: "Music Videos", Templates: []string{
				"Guitar Solo Performance #{num}",
				"Piano Cover #{num}",
				"Acoustic Session #{num}",
				"Electronic Mix #{num}",
				"Live Concert #{num}",
			}},
			{Name: "Gaming", Templates: []string{
				"Epic Gaming Moments #{num}",
				"Game Review #{num}",
				"Speedrun Attempt #{num}",
				"Gaming Tips #{num}",
				"Multiplayer Highlights #{num}",
			}},
			{Name: "Education", Templates: []string{
				"Science Explained #{num}",
				"History Lesson #{num}",
				"Math Tutorial #{num}",
				"Programming Guide #{num}",
				"Physics Concepts #{num}",
			}},
			{Name: "Entertainment", Templates: []string{
				"Comedy Sketch #{num}",
				"Magic Tricks #{num}",
				"Movie Review #{num}",
				"Celebrity Interview #{num}",
				"Viral Reaction #{num}",
			}},
			{Name: "Sports", Templates: []string{
				"Sports Highlights #{num}",
				"Training Session #{num}",
				"Game Analysis #{num}",
				"Championship Moments #{num}",
				"Athletic Performance #{num}",
			}},
			{Name: "Technology", Templates: []string{
				"Tech Review #{num}",
				"Gadget Unboxing #{num}",
				"Programming Tutorial #{num}",
				"Tech News #{num}",
				"Device Comparison #{num}",
			}},
			{Name: "Comedy", Templates: []string{
				"Stand-up Comedy #{num}",
				"Funny Compilation #{num}",
				"Comedy Sketch #{num}",
				"Humorous Stories #{num}",
				"Comedic Performance #{num}",
			}},
		},
		StartDate:    day(2014, time.January, 1),
		EndDate:      day(2024, time.December, 31),
		Numbering:    Sequential,
		DefaultCount: 200,
		CountFromEnv: true,
		OutputFile:   "streaming_data.json",
	},
	"classic": {
		Name: "classic",
		Categories: []Category{
			{Name: "Trending", Templates: []string{
				"Viral Moment #{num}",
				"Must Watch #{num}",
				"Trending Now #{num}",
			}},
			{Name: "Music Videos", Templates: []string{
				"Official Music Video #{num}",
				"Lyric Video #{num}",
				"Live Performance #{num}",
			}},
			{Name: "Gaming", Templates: []string{
				"Let's Play Episode #{num}",
				"Boss Fight #{num}",
				"Gaming Highlights #{num}",
			}},
			{Name: "Education", Templates: []string{
				"Crash Course #{num}",
				"Lecture #{num}",
				"How It Works #{num}",
			}},
			{Name: "Movies", Templates: []string{
				"Official Trailer #{num}",
				"Behind The Scenes #{num}",
				"Film Breakdown #{num}",
			}},
			{Name: "Sports", Templates: []string{
				"Match Highlights #{num}",
				"Top 10 Plays #{num}",
				"Post Game Interview #{num}",
			}},
			{Name: "Technology", Templates: []string{
				"Unboxing #{num}",
				"Hands-on Review #{num}",
				"Build Log #{num}",
			}},
			{Name: "Podcasts", Templates: []string{
				"Podcast Episode #{num}",
				"Interview Clip #{num}",
				"Q&A Session #{num}",
			}},
		},
		StartDate:    day(2019, time.January, 1),
		EndDate:      day(2024, time.December, 31),
		Numbering:    Random,
		DefaultCount: 150,
		CountFromEnv: false,
		OutputFile:   "videos.json",
	},
}

// Lookup returns the variant registered under name
func Lookup(name string) (Variant, bool) {
	v, ok := registry[name]
	return v, ok
}

// Names returns all registered variant names sorted alphabetically
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
