package models

import (
	"math"
	"strings"
	"testing"
)

func TestNamespaceIDRulesValidate(t *testing.T) {
	rules := NamespaceIDRules{
		MinLength:         3,
		MaxLength:         8,
		AllowedCharacters: "abcdefghijklmnopqrstuvwxyz-",
	}

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "my-ns", false},
		{"minimum length", "abc", false},
		{"maximum length", "abcdefgh", false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"too long", "abcdefghi", true},
		{"upper case", "MyNs", true},
		{"digit", "ns1", true},
		{"slash", "a/bc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.Validate(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestNamespaceIDRulesWithoutCharacterSet(t *testing.T) {
	rules := NamespaceIDRules{MinLength: 1, MaxLength: 64}
	if err := rules.Validate("Anything Goes!"); err != nil {
		t.Errorf("Expected any character to be accepted, got %v", err)
	}
	if err := rules.Validate(strings.Repeat("x", 65)); err == nil {
		t.Errorf("Expected length limit to still apply")
	}
}

func TestNamespaceIDRulesHugeMaximum(t *testing.T) {
	rules := NamespaceIDRules{MinLength: 1, MaxLength: math.MaxUint64}
	if err := rules.Validate(strings.Repeat("x", 4096)); err != nil {
		t.Errorf("Expected a huge maximum to accept long ids, got %v", err)
	}
	if err := rules.Validate(""); err == nil {
		t.Errorf("Expected empty id to be rejected")
	}
}

func TestInvitesRequired(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want bool
	}{
		{"v1 without invites", Info{}, false},
		{"v1 with invites", Info{Invites: true}, true},
		{"v2 with invites", Info{Settings: &Settings{Invites: true}}, true},
		{"v2 settings win", Info{Invites: true, Settings: &Settings{Invites: false}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.InvitesRequired(); got != tt.want {
				t.Errorf("InvitesRequired() = %v, want %v", got, tt.want)
			}
		})
	}
}
