// Package yaml loads site configuration from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/siterank"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	SiteNameEnv = "SITERANK_SITE_NAME"
	SiteURLEnv  = "SITERANK_SITE_URL"
	TwitterEnv  = "SITERANK_TWITTER"
)

type addressFile struct {
	Street     string `yaml:"street"`
	City       string `yaml:"city"`
	State      string `yaml:"state"`
	PostalCode string `yaml:"postalCode"`
	Country    string `yaml:"country"`
}

// configFile mirrors siterank.SiteConfig. Pointer fields distinguish unset
// values from zero values so defaults survive.
type configFile struct {
	SiteName             string       `yaml:"siteName"`
	SiteURL              string       `yaml:"siteUrl"`
	DefaultImage         string       `yaml:"defaultImage"`
	TwitterHandle        string       `yaml:"twitterHandle"`
	FacebookAppID        string       `yaml:"facebookAppId"`
	ContactEmail         string       `yaml:"contactEmail"`
	Phone                string       `yaml:"phone"`
	Address              *addressFile `yaml:"address"`
	TitleOverride        string       `yaml:"titleOverride"`
	DescriptionOverride  string       `yaml:"descriptionOverride"`
	ExtraKeywords        []string     `yaml:"extraKeywords"`
	Locale               string       `yaml:"locale"`
	GenerateCanonical    *bool        `yaml:"generateCanonical"`
	MaxTitleLength       *int         `yaml:"maxTitleLength"`
	MaxDescriptionLength *int         `yaml:"maxDescriptionLength"`
}

// ConfigLoader builds a siterank.SiteConfig from defaults, an optional YAML
// file and the environment, in that order of precedence.
type ConfigLoader struct {
	// Getenv looks up environment overrides. Defaults to os.Getenv.
	Getenv func(string) string
}

// NewConfigLoader returns a ConfigLoader reading the process environment.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{Getenv: os.Getenv}
}

// Load reads the configuration at path. An empty path yields the defaults
// with environment overrides applied.
func (l *ConfigLoader) Load(path string) (*siterank.SiteConfig, error) {
	if path == "" {
		return l.finish(siterank.NewSiteConfig())
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, siterank.Errorf(siterank.ENOTFOUND, "config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	return l.Decode(f)
}

// Decode reads YAML configuration from r. Unknown keys are rejected.
func (l *ConfigLoader) Decode(r io.Reader) (*siterank.SiteConfig, error) {
	var file configFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, siterank.Errorf(siterank.EINVALID, "invalid config: %s", err)
	}

	cfg := siterank.NewSiteConfig()
	file.apply(cfg)
	return l.finish(cfg)
}

func (l *ConfigLoader) finish(cfg *siterank.SiteConfig) (*siterank.SiteConfig, error) {
	l.applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *ConfigLoader) applyEnv(cfg *siterank.SiteConfig) {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := getenv(SiteNameEnv); v != "" {
		cfg.SiteName = v
	}
	if v := getenv(SiteURLEnv); v != "" {
		cfg.SiteURL = v
	}
	if v := getenv(TwitterEnv); v != "" {
		cfg.TwitterHandle = v
	}
}

func (f *configFile) apply(cfg *siterank.SiteConfig) {
	cfg.SiteName = f.SiteName
	cfg.SiteURL = f.SiteURL
	cfg.DefaultImage = f.DefaultImage
	cfg.TwitterHandle = f.TwitterHandle
	cfg.FacebookAppID = f.FacebookAppID
	cfg.ContactEmail = f.ContactEmail
	cfg.Phone = f.Phone
	cfg.TitleOverride = f.TitleOverride
	cfg.DescriptionOverride = f.DescriptionOverride
	cfg.ExtraKeywords = f.ExtraKeywords

	if f.Address != nil {
		cfg.Address = &siterank.Address{
			Street:     f.Address.Street,
			City:       f.Address.City,
			State:      f.Address.State,
			PostalCode: f.Address.PostalCode,
			Country:    f.Address.Country,
		}
	}
	if f.Locale != "" {
		cfg.Locale = f.Locale
	}
	if f.GenerateCanonical != nil {
		cfg.GenerateCanonical = *f.GenerateCanonical
	}
	if f.MaxTitleLength != nil {
		cfg.MaxTitleLength = *f.MaxTitleLength
	}
	if f.MaxDescriptionLength != nil {
		cfg.MaxDescriptionLength = *f.MaxDescriptionLength
	}
}
