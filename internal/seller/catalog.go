package seller

import (
	"os"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

// Logo resolves a seller to a brand icon when its normalized name contains any of Match.
type Logo struct {
	Match []string `yaml:"match"`
	URL   string   `yaml:"url"`
}

// Catalog is the immutable seller reference data: the trusted whitelist and the logo table.
type Catalog struct {
	trusted []string
	logos   []Logo
}

type catalogFile struct {
	TrustedSellers []string `yaml:"trusted_sellers"`
	Logos          []Logo   `yaml:"logos"`
}

var defaultTrusted = []string{
	// Major retailers
	"amazon", "ebay", "walmart", "best buy", "bestbuy", "target", "costco",

	// Department stores
	"macys", "macy's", "nordstrom", "kohls", "kohl's", "bloomingdales", "jcpenney",

	// Sporting goods
	"dicks sporting goods", "dick's", "foot locker", "champs sports", "rei",
	"academy sports", "big 5", "fanatics",

	// Brand stores
	"nike", "adidas", "puma", "reebok", "new balance", "under armour", "asics",
	"converse", "vans", "crocs", "timberland", "skechers", "hoka", "brooks",

	// Electronics & home
	"b&h photo", "bhphotovideo", "newegg", "wayfair", "home depot", "lowes", "staples", "office depot",
	"gamestop", "dell", "hp", "lenovo", "apple", "samsung", "sony", "lg",
}

var defaultLogos = []Logo{
	{Match: []string{"amazon"}, URL: "https://upload.wikimedia.org/wikipedia/commons/a/a9/Amazon_logo.svg"},
	{Match: []string{"ebay"}, URL: "https://upload.wikimedia.org/wikipedia/commons/1/1b/EBay_logo.svg"},
	{Match: []string{"walmart"}, URL: "https://upload.wikimedia.org/wikipedia/commons/c/ca/Walmart_logo.svg"},
	{Match: []string{"best buy", "bestbuy"}, URL: "https://upload.wikimedia.org/wikipedia/commons/f/f5/Best_Buy_Logo.svg"},
	{Match: []string{"target"}, URL: "https://upload.wikimedia.org/wikipedia/commons/9/9a/Target_logo.svg"},
	{Match: []string{"costco"}, URL: "https://upload.wikimedia.org/wikipedia/commons/5/59/Costco_Wholesale_logo_2010-10-26.svg"},
}

// DefaultCatalog returns the built-in US retailer catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultTrusted, defaultLogos)
}

// NewCatalog builds a catalog. Entries are normalized the same way seller names are,
// so "macy's" and "macys" collapse into one entry.
func NewCatalog(trusted []string, logos []Logo) *Catalog {
	c := &Catalog{}
	seen := make(map[string]bool, len(trusted))
	for _, t := range trusted {
		n := Normalize(t)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		c.trusted = append(c.trusted, n)
	}
	for _, l := range logos {
		if l.URL == "" {
			continue
		}
		entry := Logo{URL: l.URL}
		for _, m := range l.Match {
			if n := Normalize(m); n != "" {
				entry.Match = append(entry.Match, n)
			}
		}
		if len(entry.Match) > 0 {
			c.logos = append(c.logos, entry)
		}
	}
	return c
}

// LoadCatalog reads a YAML catalog file. Sections left empty fall back to the defaults.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog")
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parse catalog %s", path)
	}

	trusted := f.TrustedSellers
	if len(trusted) == 0 {
		trusted = defaultTrusted
	}
	logos := f.Logos
	if len(logos) == 0 {
		logos = defaultLogos
	}
	return NewCatalog(trusted, logos), nil
}

// IsTrusted reports whether the normalized source contains any trusted entry.
func (c *Catalog) IsTrusted(source string) bool {
	n := Normalize(source)
	if n == "" {
		return false
	}
	for _, t := range c.trusted {
		if strings.Contains(n, t) {
			return true
		}
	}
	return false
}

// LogoFor returns the brand icon for source, else fallback.
func (c *Catalog) LogoFor(source, fallback string) string {
	n := Normalize(source)
	if n != "" {
		for _, l := range c.logos {
			for _, m := range l.Match {
				if strings.Contains(n, m) {
					return l.URL
				}
			}
		}
	}
	return fallback
}

// Trusted returns a copy of the normalized whitelist.
func (c *Catalog) Trusted() []string {
	return append([]string(nil), c.trusted...)
}
