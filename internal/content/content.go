// Package content holds the hotel copy rendered by the page: hero, about
// text, suites, amenities, gallery and contact details.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Hotel is the brand block shown in the header and footer.
type Hotel struct {
	Name     string `yaml:"name"`
	Tagline  string `yaml:"tagline"`
	District string `yaml:"district"`
}

// Hero is the landing block.
type Hero struct {
	Eyebrow  string `yaml:"eyebrow"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// About is the story section. Each block is revealed on its own stagger
// step.
type About struct {
	Eyebrow string   `yaml:"eyebrow"`
	Heading string   `yaml:"heading"`
	Blocks  []string `yaml:"blocks"`
}

// Suite is one carousel slide.
type Suite struct {
	ID          string   `yaml:"id,omitempty"`
	Name        string   `yaml:"name"`
	Size        string   `yaml:"size"`
	Price       string   `yaml:"price"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
}

// Amenity is one card in the amenities grid.
type Amenity struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Photo is one gallery entry.
type Photo struct {
	ID       string `yaml:"id,omitempty"`
	Alt      string `yaml:"alt"`
	Category string `yaml:"category"`
	Src      string `yaml:"src,omitempty"`
}

// Contact lists the front desk details.
type Contact struct {
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Hours   string `yaml:"hours"`
}

// Catalog is the full page copy.
type Catalog struct {
	Hotel     Hotel     `yaml:"hotel"`
	Hero      Hero      `yaml:"hero"`
	About     About     `yaml:"about"`
	Suites    []Suite   `yaml:"suites"`
	Amenities []Amenity `yaml:"amenities"`
	Gallery   []Photo   `yaml:"gallery"`
	Contact   Contact   `yaml:"contact"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path. An empty path yields the embedded
// catalog.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog, fills in missing IDs and validates it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("content: decode catalog: %w", err)
	}
	c.assignIDs()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the fields the page cannot render without.
func (c *Catalog) Validate() error {
	if strings.TrimSpace(c.Hotel.Name) == "" {
		return fmt.Errorf("content: hotel name is required")
	}
	seen := map[string]bool{}
	for i, s := range c.Suites {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("content: suite %d has no name", i)
		}
	}
	for i, p := range c.Gallery {
		if strings.TrimSpace(p.Category) == "" {
			return fmt.Errorf("content: gallery item %d has no category", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("content: duplicate gallery id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// SuiteByName finds a suite case-insensitively.
func (c *Catalog) SuiteByName(name string) (Suite, bool) {
	name = strings.TrimSpace(name)
	for _, s := range c.Suites {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Suite{}, false
}

// SuiteNames lists suite names in catalog order.
func (c *Catalog) SuiteNames() []string {
	out := make([]string, 0, len(c.Suites))
	for _, s := range c.Suites {
		out = append(out, s.Name)
	}
	return out
}

func (c *Catalog) assignIDs() {
	for i := range c.Suites {
		if c.Suites[i].ID == "" {
			c.Suites[i].ID = stableID("suite", c.Suites[i].Name)
		}
	}
	for i := range c.Gallery {
		if c.Gallery[i].ID == "" {
			c.Gallery[i].ID = stableID("photo", c.Gallery[i].Category+"/"+c.Gallery[i].Alt)
		}
	}
}

func stableID(kind, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+key)).String()
}
