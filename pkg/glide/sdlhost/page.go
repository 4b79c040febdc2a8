package sdlhost

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed page.toml
var defaultPage []byte

// Page is the document the demo host scrolls.
type Page struct {
	Title    string    `toml:"title"`
	Nav      []NavLink `toml:"nav"`
	Sections []Section `toml:"sections"`
}

// NavLink is an entry in the fixed navbar. Href is usually a fragment such
// as "#about".
type NavLink struct {
	Label string `toml:"label"`
	Href  string `toml:"href"`
}

// Section is one anchor target on the page.
type Section struct {
	ID         string  `toml:"id"`
	Title      string  `toml:"title"`
	Body       string  `toml:"body"`
	MinScreens float64 `toml:"min_screens"` // Minimum height as a multiple of the viewport
}

// DefaultPage returns the bundled demo page.
func DefaultPage() Page {
	page, err := ParsePage(defaultPage)
	if err != nil {
		panic(err)
	}
	return page
}

// ParsePage decodes a page from TOML.
func ParsePage(data []byte) (Page, error) {
	var page Page
	if _, err := toml.Decode(string(data), &page); err != nil {
		return Page{}, fmt.Errorf("parse page: %w", err)
	}
	if err := page.validate(); err != nil {
		return Page{}, err
	}
	return page, nil
}

// LoadPage reads a page from a TOML file.
func LoadPage(path string) (Page, error) {
	var page Page
	if _, err := toml.DecodeFile(path, &page); err != nil {
		return Page{}, fmt.Errorf("load page %s: %w", path, err)
	}
	if err := page.validate(); err != nil {
		return Page{}, err
	}
	return page, nil
}

// SectionTitle returns the title of the section with id, or id itself when
// the section is missing or untitled.
func (p Page) SectionTitle(id string) string {
	for _, s := range p.Sections {
		if s.ID == id && s.Title != "" {
			return s.Title
		}
	}
	return id
}

func (p Page) validate() error {
	seen := make(map[string]bool, len(p.Sections))
	for i, s := range p.Sections {
		if s.ID == "" {
			continue
		}
		if seen[s.ID] {
			return fmt.Errorf("section %d: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
