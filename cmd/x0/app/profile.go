package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
	"k8s.io/client-go/util/homedir"
)

// Profile is the CLI's persisted state: which server to talk to and the
// tokens of namespaces created or reset with --save.
type Profile struct {
	Server     string            `yaml:"server,omitempty"`
	APIVersion string            `yaml:"apiVersion,omitempty"`
	Tokens     map[string]string `yaml:"tokens,omitempty"`
}

// DefaultProfilePath returns ~/.x0/config.yaml, or "" when there is no home directory.
func DefaultProfilePath() string {
	home := homedir.HomeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".x0", "config.yaml")
}

// LoadProfile reads the profile at path. A missing file yields an empty profile.
func LoadProfile(path string) (*Profile, error) {
	p := &Profile{}
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decoding profile %s: %w", path, err)
	}
	return p, nil
}

// Save writes the profile to path, creating the directory if needed.
func (p *Profile) Save(path string) error {
	if path == "" {
		return errors.New("no profile path, pass --config")
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Token returns the saved token of a namespace.
func (p *Profile) Token(id string) string {
	return p.Tokens[id]
}

// SetToken records the token of a namespace.
func (p *Profile) SetToken(id, token string) {
	if p.Tokens == nil {
		p.Tokens = make(map[string]string)
	}
	p.Tokens[id] = token
}
