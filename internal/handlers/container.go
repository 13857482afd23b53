package handlers

import (
	"github.com/Payback159/x0go/internal/models"
)

// Container will hold all dependencies for the mock x0 handlers.
type Container struct {
	config *models.Config
	store  *namespaceStore
}

// NewContainer returns a container serving the given configuration.
// A nil config falls back to models.DefaultConfig.
func NewContainer(cfg *models.Config) (*Container, error) {
	if cfg == nil {
		cfg = models.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := Container{
		config: cfg,
		store:  newNamespaceStore(cfg),
	}
	return &c, nil
}
