package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/qamarshahid/techprocessing/pkg/security"
)

// EnvPolicyPrefix prefixes environment overrides of the default policy,
// e.g. PASSWORD_POLICY_MIN_LENGTH=14.
const EnvPolicyPrefix = "PASSWORD_POLICY"

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Password PasswordConfig `mapstructure:"password"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// PasswordConfig holds the default policy and per-role overrides. Role
// policies start from Default and only replace the keys they set.
type PasswordConfig struct {
	Default security.Policy            `mapstructure:"default"`
	Roles   map[string]security.Policy `mapstructure:"-"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", Console: true},
		Metrics: MetricsConfig{Enabled: false, Namespace: "techprocessing"},
		Password: PasswordConfig{
			Default: security.DefaultPolicy(),
			Roles:   map[string]security.Policy{},
		},
	}
}

// Load reads config from path, or searches for config.yml in the usual
// places when path is empty. A missing file in search mode is not an error.
func Load(path string) (*Config, error) {
	return LoadWithViper(viper.New(), path)
}

// LoadWithViper is Load on a caller-owned viper instance, so flags bound to
// it take part in resolution.
func LoadWithViper(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix("TECHPROCESSING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/app/config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process(EnvPolicyPrefix, &cfg.Password.Default); err != nil {
		return nil, fmt.Errorf("failed to read %s_* environment: %w", EnvPolicyPrefix, err)
	}
	if err := cfg.Password.Default.Validate(); err != nil {
		return nil, fmt.Errorf("password.default: %w", err)
	}

	cfg.Password.Roles = make(map[string]security.Policy)
	for _, role := range roleNames(v) {
		policy := cfg.Password.Default.WithUserInfo()
		if err := v.UnmarshalKey("password.roles."+role, &policy); err != nil {
			return nil, fmt.Errorf("failed to unmarshal password.roles.%s: %w", role, err)
		}
		if err := policy.Validate(); err != nil {
			return nil, fmt.Errorf("password.roles.%s: %w", role, err)
		}
		cfg.Password.Roles[role] = policy
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.console", def.Log.Console)
	v.SetDefault("metrics.enabled", def.Metrics.Enabled)
	v.SetDefault("metrics.namespace", def.Metrics.Namespace)

	p := def.Password.Default
	v.SetDefault("password.default.min_length", p.MinLength)
	v.SetDefault("password.default.max_length", p.MaxLength)
	v.SetDefault("password.default.require_uppercase", p.RequireUppercase)
	v.SetDefault("password.default.require_lowercase", p.RequireLowercase)
	v.SetDefault("password.default.require_numbers", p.RequireNumbers)
	v.SetDefault("password.default.require_special_chars", p.RequireSpecialChars)
	v.SetDefault("password.default.prevent_common_passwords", p.PreventCommonPasswords)
	v.SetDefault("password.default.prevent_user_info", p.PreventUserInfo)
	v.SetDefault("password.default.min_entropy_bits", p.MinEntropyBits)
}

func roleNames(v *viper.Viper) []string {
	roles := v.GetStringMap("password.roles")
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
