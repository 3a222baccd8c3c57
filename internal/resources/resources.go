// Package resources serves the static catalogue of support services and
// self-help links that the support prompt points to.
package resources

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed resources.yaml
var defaultCatalog []byte

// Kind says how a resource is opened
type Kind string

const (
	KindPhone Kind = "phone"
	KindLink  Kind = "link"
)

// Resource is one support service or link
type Resource struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Kind        Kind   `yaml:"kind" json:"kind"`
	Phone       string `yaml:"phone,omitempty" json:"phone,omitempty"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
	// Href is the URI a client opens: tel: for phones, the URL for links
	Href string `yaml:"-" json:"href"`
}

// QuickSupport is the crisis panel shown above the sections
type QuickSupport struct {
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Items       []Resource `yaml:"items" json:"items"`
}

// Section groups related resources under a heading
type Section struct {
	Heading string     `yaml:"heading" json:"heading"`
	Icon    string     `yaml:"icon,omitempty" json:"icon,omitempty"`
	Items   []Resource `yaml:"items" json:"items"`
}

// Catalog is the full resources screen
type Catalog struct {
	Title        string       `yaml:"title" json:"title"`
	Subtitle     string       `yaml:"subtitle" json:"subtitle"`
	QuickSupport QuickSupport `yaml:"quick_support" json:"quick_support"`
	Sections     []Section    `yaml:"sections" json:"sections"`
}

// Default parses the catalogue compiled into the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes and validates a YAML catalogue
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	var errs []error
	if len(c.QuickSupport.Items) == 0 {
		errs = append(errs, errors.New("quick_support has no items"))
	}
	for i := range c.QuickSupport.Items {
		if err := c.QuickSupport.Items[i].resolve(); err != nil {
			errs = append(errs, fmt.Errorf("quick_support[%d]: %w", i, err))
		}
	}
	for s := range c.Sections {
		sec := &c.Sections[s]
		if sec.Heading == "" {
			errs = append(errs, fmt.Errorf("sections[%d]: heading is required", s))
		}
		for i := range sec.Items {
			if err := sec.Items[i].resolve(); err != nil {
				errs = append(errs, fmt.Errorf("sections[%d] %q item %d: %w", s, sec.Heading, i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// resolve validates r and fills Href
func (r *Resource) resolve() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	switch r.Kind {
	case KindPhone:
		number := strings.Join(strings.Fields(r.Phone), "")
		if number == "" {
			return fmt.Errorf("%q: phone resource needs a phone number", r.Title)
		}
		r.Href = "tel:" + number
	case KindLink:
		u, err := url.Parse(r.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%q: link resource needs an http(s) url", r.Title)
		}
		r.Href = r.URL
	default:
		return fmt.Errorf("%q: unknown kind %q", r.Title, r.Kind)
	}
	return nil
}
