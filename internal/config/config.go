// Package config resolves the portal client configuration from an
// optional YAML file plus environment overrides. Environment always
// wins so deployments can pin a single value without editing the file.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	envServerHost       = "CIC_PORTAL_SERVER_HOST"
	envClientHost       = "CIC_PORTAL_CLIENT_HOST"
	envClientID         = "CIC_PORTAL_CLIENT_ID"
	envTenant           = "CIC_PORTAL_TENANT"
	envAppBasePath      = "CIC_PORTAL_APP_BASE_PATH"
	envLoginCallbackURL = "CIC_PORTAL_LOGIN_CALLBACK_URL"
	envSessionStatePath = "CIC_PORTAL_SESSION_STATE_PATH"
	envSessionSecret    = "CIC_PORTAL_SESSION_SECRET"
	envRateLimitEnabled = "CIC_PORTAL_RATE_LIMIT_ENABLED"
	envRateLimitRPS     = "CIC_PORTAL_RATE_LIMIT_RPS"
	envRateLimitBurst   = "CIC_PORTAL_RATE_LIMIT_BURST"
)

// Config carries everything the request builder and the classifier's
// redirect targets need.
type Config struct {
	ServerHost string `yaml:"serverHost"`
	ClientHost string `yaml:"clientHost"`
	ClientID   string `yaml:"clientId"`
	Tenant     string `yaml:"tenant"`

	AppBasePath      string `yaml:"appBasePath"`
	HomePath         string `yaml:"homePath"`
	LoginPath        string `yaml:"loginPath"`
	LogoutPath       string `yaml:"logoutPath"`
	LoginErrorPath   string `yaml:"loginErrorPath"`
	LoginCallbackURL string `yaml:"loginCallbackURL"`

	SessionStatePath string `yaml:"sessionStatePath"`
	SessionSecret    string `yaml:"sessionSecret"`

	RateLimit RateLimitConfig `yaml:"rateLimit"`
}

type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

type fileConfig struct {
	Portal Config `yaml:"portal"`
}

func Default() Config {
	return Config{
		HomePath:       "/overview",
		LoginPath:      "/login",
		LogoutPath:     "/logout",
		LoginErrorPath: "/login-error",
		RateLimit: RateLimitConfig{
			Enabled: false,
			RPS:     30,
			Burst:   60,
		},
	}
}

// LoadFromPath reads configPath when given, otherwise tries the default
// candidate locations. A missing or unparsable file is not an error;
// the defaults plus env overrides still apply.
func LoadFromPath(configPath string) Config {
	cfg := Default()

	candidates := make([]string, 0, 2)
	if configPath != "" {
		candidates = append(candidates, configPath)
	} else {
		candidates = append(candidates,
			"configs/portal.yaml",
			"portal.yaml",
		)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var parsed fileConfig
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			continue
		}
		merged := cfg
		Merge(&merged, parsed.Portal)
		ApplyEnvOverrides(&merged)
		return merged
	}

	ApplyEnvOverrides(&cfg)
	return cfg
}

func Merge(dst *Config, src Config) {
	if src.ServerHost != "" {
		dst.ServerHost = src.ServerHost
	}
	if src.ClientHost != "" {
		dst.ClientHost = src.ClientHost
	}
	if src.ClientID != "" {
		dst.ClientID = src.ClientID
	}
	if src.Tenant != "" {
		dst.Tenant = src.Tenant
	}
	if src.AppBasePath != "" {
		dst.AppBasePath = src.AppBasePath
	}
	if src.HomePath != "" {
		dst.HomePath = src.HomePath
	}
	if src.LoginPath != "" {
		dst.LoginPath = src.LoginPath
	}
	if src.LogoutPath != "" {
		dst.LogoutPath = src.LogoutPath
	}
	if src.LoginErrorPath != "" {
		dst.LoginErrorPath = src.LoginErrorPath
	}
	if src.LoginCallbackURL != "" {
		dst.LoginCallbackURL = src.LoginCallbackURL
	}
	if src.SessionStatePath != "" {
		dst.SessionStatePath = src.SessionStatePath
	}
	if src.SessionSecret != "" {
		dst.SessionSecret = src.SessionSecret
	}
	if src.RateLimit.Enabled {
		dst.RateLimit.Enabled = true
	}
	if src.RateLimit.RPS > 0 {
		dst.RateLimit.RPS = src.RateLimit.RPS
	}
	if src.RateLimit.Burst > 0 {
		dst.RateLimit.Burst = src.RateLimit.Burst
	}
}

func ApplyEnvOverrides(cfg *Config) {
	cfg.ServerHost = envStringWithFallback(envServerHost, cfg.ServerHost)
	cfg.ClientHost = envStringWithFallback(envClientHost, cfg.ClientHost)
	cfg.ClientID = envStringWithFallback(envClientID, cfg.ClientID)
	cfg.Tenant = envStringWithFallback(envTenant, cfg.Tenant)
	cfg.AppBasePath = envStringWithFallback(envAppBasePath, cfg.AppBasePath)
	cfg.LoginCallbackURL = envStringWithFallback(envLoginCallbackURL, cfg.LoginCallbackURL)
	cfg.SessionStatePath = envStringWithFallback(envSessionStatePath, cfg.SessionStatePath)
	cfg.SessionSecret = envStringWithFallback(envSessionSecret, cfg.SessionSecret)
	cfg.RateLimit.Enabled = envBoolWithFallback(envRateLimitEnabled, cfg.RateLimit.Enabled)
	if rps := envFloatWithFallback(envRateLimitRPS, cfg.RateLimit.RPS); rps > 0 {
		cfg.RateLimit.RPS = rps
	}
	if burst := envIntWithFallback(envRateLimitBurst, cfg.RateLimit.Burst); burst > 0 {
		cfg.RateLimit.Burst = burst
	}
}

// NormalizedServerHost strips a trailing slash so endpoint joins stay
// predictable.
func (c Config) NormalizedServerHost() string {
	return strings.TrimRight(strings.TrimSpace(c.ServerHost), "/")
}
