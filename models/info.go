package models

import (
	"fmt"
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Info is the service metadata returned by the info endpoint.
// Settings is only populated by the v2 API, Invites only by v1.
type Info struct {
	Version    string    `json:"version"`
	Production bool      `json:"production"`
	Invites    bool      `json:"invites,omitempty"`
	Settings   *Settings `json:"settings,omitempty"`
}

// Settings describes the server's namespace policy.
type Settings struct {
	Invites          bool             `json:"invites"`
	NamespaceIDRules NamespaceIDRules `json:"namespace_id_rules"`
}

// NamespaceIDRules are the constraints a namespace identifier has to satisfy on the server.
type NamespaceIDRules struct {
	MinLength         uint64 `json:"min_length"`
	MaxLength         uint64 `json:"max_length"`
	AllowedCharacters string `json:"allowed_characters"`
}

// InvitesRequired reports whether namespace creation needs an invite code.
func (i *Info) InvitesRequired() bool {
	if i.Settings != nil {
		return i.Settings.Invites
	}
	return i.Invites
}

// Validate checks id against the rules. An empty AllowedCharacters set accepts any character.
func (r NamespaceIDRules) Validate(id string) error {
	return validation.Validate(id,
		validation.Required,
		validation.RuneLength(clampInt(r.MinLength), clampInt(r.MaxLength)),
		validation.By(r.checkCharacters),
	)
}

func clampInt(v uint64) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}

func (r NamespaceIDRules) checkCharacters(value interface{}) error {
	if r.AllowedCharacters == "" {
		return nil
	}
	id, _ := value.(string)
	allowed := sets.New([]rune(r.AllowedCharacters)...)
	for _, c := range id {
		if !allowed.Has(c) {
			return fmt.Errorf("character %q is not allowed", c)
		}
	}
	return nil
}
