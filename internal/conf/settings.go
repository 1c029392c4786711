// Package conf holds application configuration loaded via Viper.
package conf

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Settings is the full application configuration.
type Settings struct {
	Server  ServerSettings  `mapstructure:"server"`
	Shell   ShellSettings   `mapstructure:"shell"`
	Storage StorageSettings `mapstructure:"storage"`
	Push    PushSettings    `mapstructure:"push"`
	Contact ContactSettings `mapstructure:"contact"`
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Listen       string   `mapstructure:"listen"`
	ReadTimeout  Duration `mapstructure:"read_timeout"`
	WriteTimeout Duration `mapstructure:"write_timeout"`
}

// ShellSettings configures the offline shell cache gateway.
type ShellSettings struct {
	// Upstream is the origin the gateway fronts, e.g. "https://alfdana.ae".
	Upstream string `mapstructure:"upstream"`
	// CacheVersion names the current cache generation. Bumped at deploy time.
	CacheVersion string `mapstructure:"cache_version"`
	// InternalPrefix is the framework's reserved routing prefix.
	InternalPrefix string `mapstructure:"internal_prefix"`
	// OfflinePath is the canned page served when a navigation cannot reach
	// the network. It must appear in Precache.
	OfflinePath string `mapstructure:"offline_path"`
	// Precache lists root-relative URLs cached during install.
	Precache []string `mapstructure:"precache"`
	// FetchTimeout bounds a single upstream fetch.
	FetchTimeout Duration `mapstructure:"fetch_timeout"`
}

// StorageSettings configures the persistent stores.
type StorageSettings struct {
	// Path is the SQLite database file backing both the client state
	// records and the response cache. Empty selects in-memory storage.
	Path string `mapstructure:"path"`
}

// PushSettings configures the MQTT push delivery channel.
type PushSettings struct {
	Broker   string   `mapstructure:"broker"`
	Topic    string   `mapstructure:"topic"`
	ClientID string   `mapstructure:"client_id"`
	Timeout  Duration `mapstructure:"timeout"`
}

// ContactSettings configures the WhatsApp handoff channel.
type ContactSettings struct {
	// WhatsAppNumber is the business number in international digits-only form.
	WhatsAppNumber string `mapstructure:"whatsapp_number"`
}

const defaultCacheVersion = "alf-dana-v1"

// defaultPrecache mirrors the asset set the deploy pipeline guarantees.
var defaultPrecache = []string{
	"/offline.html",
	"/manifest.json",
	"/logo.png",
	"/favicon.svg",
	"/icons/icon-192.png",
	"/icons/icon-512.png",
	"/icons/apple-touch-icon.png",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")

	v.SetDefault("shell.cache_version", defaultCacheVersion)
	v.SetDefault("shell.internal_prefix", "/_next/")
	v.SetDefault("shell.offline_path", "/offline.html")
	v.SetDefault("shell.precache", defaultPrecache)
	v.SetDefault("shell.fetch_timeout", "20s")

	v.SetDefault("push.topic", "alfdana/push")
	v.SetDefault("push.client_id", "danashell")
	v.SetDefault("push.timeout", "10s")

	v.SetDefault("contact.whatsapp_number", "971528494331")
}

var (
	settings   *Settings
	settingsMu sync.RWMutex
)

// Load reads configuration from the given file path (optional) plus
// DANASHELL_* environment variables, applies defaults and validates.
func Load(configFile string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("danashell")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s, viper.DecodeHook(DurationDecodeHook())); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	settingsMu.Lock()
	settings = &s
	settingsMu.Unlock()
	return &s, nil
}

// GetSettings returns the loaded settings, or nil before Load.
func GetSettings() *Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Validate checks invariants the rest of the application relies on.
func (s *Settings) Validate() error {
	if s.Shell.Upstream == "" {
		return fmt.Errorf("shell.upstream is required")
	}
	u, err := url.Parse(s.Shell.Upstream)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("shell.upstream %q is not an absolute URL", s.Shell.Upstream)
	}
	if s.Shell.CacheVersion == "" {
		return fmt.Errorf("shell.cache_version must not be empty")
	}
	offlineListed := false
	for _, p := range s.Shell.Precache {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("precache entry %q must be root-relative", p)
		}
		if p == s.Shell.OfflinePath {
			offlineListed = true
		}
	}
	if s.Shell.OfflinePath != "" && !offlineListed {
		return fmt.Errorf("offline page %s missing from precache manifest", s.Shell.OfflinePath)
	}
	if s.Shell.FetchTimeout.Std() < 0 || s.Server.ReadTimeout.Std() < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	if s.Shell.FetchTimeout.Std() == 0 {
		s.Shell.FetchTimeout = Duration(20 * time.Second)
	}
	return nil
}
