package models

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v2"

	x0 "github.com/Payback159/x0go/models"
)

// Config describes the mock x0 server: the info document it publishes and the
// namespaces it starts with.
type Config struct {
	LogLevel   string   `yaml:"logLevel"`
	LogFormat  string   `yaml:"logFormat"` // "json" or "text", defaults to "json"
	Listen     string   `yaml:"listen"`
	Version    string   `yaml:"version"`
	Production bool     `yaml:"production"`
	Settings   Settings `yaml:"settings"`
	// Invite codes accepted when Settings.Invites is enabled. Each code can be used once.
	InviteCodes []string        `yaml:"inviteCodes"`
	TokenLength int             `yaml:"tokenLength"`
	Namespaces  []SeedNamespace `yaml:"namespaces"`
}

type Settings struct {
	Invites          bool    `yaml:"invites"`
	NamespaceIDRules IDRules `yaml:"namespaceIdRules"`
}

type IDRules struct {
	MinLength         uint64 `yaml:"minLength"`
	MaxLength         uint64 `yaml:"maxLength"`
	AllowedCharacters string `yaml:"allowedCharacters"`
}

// SeedNamespace is a namespace that exists when the server starts.
type SeedNamespace struct {
	ID     string `yaml:"id"`
	Token  string `yaml:"token"`
	Active bool   `yaml:"active"`
}

const (
	DefaultListen            = ":8080"
	DefaultTokenLength       = 32
	DefaultAllowedCharacters = "abcdefghijklmnopqrstuvwxyz0123456789-_"
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// LoadConfig opens a file and decodes the YAML into a Config with defaults applied.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := &Config{}
	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Version == "" {
		c.Version = "development"
	}
	if c.TokenLength == 0 {
		c.TokenLength = DefaultTokenLength
	}
	rules := &c.Settings.NamespaceIDRules
	if rules.MinLength == 0 {
		rules.MinLength = 1
	}
	if rules.MaxLength == 0 {
		rules.MaxLength = 32
	}
	if rules.AllowedCharacters == "" {
		rules.AllowedCharacters = DefaultAllowedCharacters
	}
}

func (c *Config) Validate() error {
	rules := c.Settings.NamespaceIDRules
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In("json", "text")),
		validation.Field(&c.Listen, validation.Required),
		validation.Field(&c.TokenLength, validation.Min(8)),
		validation.Field(&c.InviteCodes, validation.Each(validation.Required)),
		validation.Field(&c.Namespaces, validation.By(c.validateSeeds)),
	)
	if err != nil {
		return err
	}
	if rules.MaxLength < rules.MinLength {
		return fmt.Errorf("namespaceIdRules: maxLength %d is below minLength %d", rules.MaxLength, rules.MinLength)
	}
	return nil
}

func (c *Config) validateSeeds(interface{}) error {
	rules := c.Rules()
	seen := make(map[string]bool, len(c.Namespaces))
	for _, ns := range c.Namespaces {
		if err := rules.Validate(ns.ID); err != nil {
			return fmt.Errorf("namespace %q: %w", ns.ID, err)
		}
		if ns.Token == "" {
			return fmt.Errorf("namespace %q: token is required", ns.ID)
		}
		if seen[ns.ID] {
			return fmt.Errorf("namespace %q is listed twice", ns.ID)
		}
		seen[ns.ID] = true
	}
	return nil
}

// Rules returns the namespace id rules in their wire form.
func (c *Config) Rules() x0.NamespaceIDRules {
	r := c.Settings.NamespaceIDRules
	return x0.NamespaceIDRules{
		MinLength:         r.MinLength,
		MaxLength:         r.MaxLength,
		AllowedCharacters: r.AllowedCharacters,
	}
}

// Info builds the info document for the given API generation.
// Generation 1 reports invites at the top level, later ones nest them in settings.
func (c *Config) Info(apiVersion int) x0.Info {
	info := x0.Info{
		Version:    c.Version,
		Production: c.Production,
	}
	if apiVersion == 1 {
		info.Invites = c.Settings.Invites
		return info
	}
	info.Settings = &x0.Settings{
		Invites:          c.Settings.Invites,
		NamespaceIDRules: c.Rules(),
	}
	return info
}
