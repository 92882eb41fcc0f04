package policy

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qamarshahid/techprocessing/internal/config"
	apperrors "github.com/qamarshahid/techprocessing/pkg/errors"
	"github.com/qamarshahid/techprocessing/pkg/security"
)

func testConfig() config.PasswordConfig {
	admin := security.DefaultPolicy()
	admin.MinLength = 16

	return config.PasswordConfig{
		Default: security.DefaultPolicy(),
		Roles:   map[string]security.Policy{RoleAdmin: admin},
	}
}

func TestRegistry_Get(t *testing.T) {
	r, err := NewRegistry(testConfig())
	require.NoError(t, err)

	assert.Equal(t, 16, r.Get("admin").MinLength)
	assert.Equal(t, 16, r.Get(" Admin ").MinLength)
	assert.Equal(t, 12, r.Get(RoleClient).MinLength)
	assert.Equal(t, []string{"admin", "default"}, r.Roles())

	_, ok := r.Lookup(RoleClient)
	assert.False(t, ok)
}

func TestRegistry_SetValidates(t *testing.T) {
	r, err := NewRegistry(testConfig())
	require.NoError(t, err)

	bad := security.DefaultPolicy()
	bad.MaxLength = 4
	err = r.Set(RoleAgent, bad)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrInvalidPolicy, apperrors.CodeOf(err))

	assert.Equal(t, apperrors.ErrBadRequest, apperrors.CodeOf(r.Set("  ", security.DefaultPolicy())))

	agent := security.DefaultPolicy()
	agent.MinLength = 14
	require.NoError(t, r.Set(RoleAgent, agent))
	assert.Equal(t, 14, r.Get(RoleAgent).MinLength)
}

func TestNewRegistry_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Default.MinLength = 0

	_, err := NewRegistry(cfg)
	assert.Error(t, err)
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	cfg := testConfig()
	cfg.Default = cfg.Default.WithUserInfo("acme")
	r, err := NewRegistry(cfg)
	require.NoError(t, err)

	p := r.Get(DefaultRole)
	p.UserInfoFields[0] = "mutated"
	p.MinLength = 1

	again := r.Get(DefaultRole)
	assert.Equal(t, []string{"acme"}, again.UserInfoFields)
	assert.Equal(t, 12, again.MinLength)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r, err := NewRegistry(testConfig())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				assert.NoError(t, r.Set(RoleClient, security.DefaultPolicy()))
			}
			assert.True(t, security.Evaluate("Tr8!mK2pQw#Lz", r.Get(RoleClient), nil).Valid)
		}(i)
	}
	wg.Wait()
}
