package policy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/qamarshahid/techprocessing/internal/config"
	apperrors "github.com/qamarshahid/techprocessing/pkg/errors"
	"github.com/qamarshahid/techprocessing/pkg/security"
)

// DefaultRole names the policy used for unknown roles.
const DefaultRole = "default"

// Dashboard roles with their own policy in the shipped config.
const (
	RoleAdmin  = "admin"
	RoleAgent  = "agent"
	RoleClient = "client"
)

// Registry resolves a role to its password policy. Entries never expire;
// every Get hands out a copy so callers cannot mutate shared state.
type Registry struct {
	cache *cache.Cache
}

// NewRegistry builds a registry from the loaded password config.
func NewRegistry(cfg config.PasswordConfig) (*Registry, error) {
	r := &Registry{cache: cache.New(cache.NoExpiration, 0)}

	if err := r.Set(DefaultRole, cfg.Default); err != nil {
		return nil, err
	}
	for role, p := range cfg.Roles {
		if err := r.Set(role, p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Set validates and stores the policy for role, replacing any previous one.
func (r *Registry) Set(role string, p security.Policy) error {
	role = normalize(role)
	if role == "" {
		return apperrors.BadRequest("role is required", nil)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("role %s: %w", role, err)
	}
	r.cache.Set(role, p.WithUserInfo(), cache.NoExpiration)
	return nil
}

// Lookup returns the policy stored for role, without fallback.
func (r *Registry) Lookup(role string) (security.Policy, bool) {
	v, found := r.cache.Get(normalize(role))
	if !found {
		return security.Policy{}, false
	}
	return v.(security.Policy).WithUserInfo(), true
}

// Get returns the policy for role, or the default policy.
func (r *Registry) Get(role string) security.Policy {
	if p, ok := r.Lookup(role); ok {
		return p
	}
	if p, ok := r.Lookup(DefaultRole); ok {
		return p
	}
	return security.DefaultPolicy()
}

// Roles lists the configured roles, sorted.
func (r *Registry) Roles() []string {
	items := r.cache.Items()
	roles := make([]string, 0, len(items))
	for role := range items {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

func normalize(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
