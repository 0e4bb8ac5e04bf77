// Package feeds defines the static feed source list the run starts from.
package feeds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source is one configured news feed. Loaded once at startup and never
// mutated afterwards.
type Source struct {
	Name     string `yaml:"source" json:"source"`
	Category string `yaml:"category" json:"category"`
	URL      string `yaml:"url" json:"url"`
}

// SourcesConfig is YAML config structure
// feeds:
//   - source: Reuters
//     category: Business
//     url: https://...
type SourcesConfig struct {
	Feeds []Source `yaml:"feeds"`
}

// Load reads the feed source list from a YAML file.
func Load(path string) ([]Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg SourcesConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode feeds config: %w", err)
	}
	if len(cfg.Feeds) == 0 {
		return nil, fmt.Errorf("feeds config %s lists no feeds", path)
	}
	return cfg.Feeds, nil
}

// Defaults returns the built-in business feed list, used when no config file
// is present. FT and Bloomberg feeds are paywalled or heavily restricted, so
// alternative sources are included instead.
func Defaults() []Source {
	return []Source{
		{Name: "Reuters", Category: "Business", URL: "https://feeds.reuters.com/reuters/businessNews"},
		{Name: "BBC Business", Category: "Business", URL: "http://feeds.bbci.co.uk/news/business/rss.xml"},
		{Name: "CNBC", Category: "Business", URL: "https://www.cnbc.com/id/10000664/device/rss/rss.html"},
		{Name: "The Economist", Category: "Business", URL: "https://www.economist.com/business/rss.xml"},
		{Name: "Associated Press", Category: "Business", URL: "https://apnews.com/hub/business/rss.xml"},
	}
}
