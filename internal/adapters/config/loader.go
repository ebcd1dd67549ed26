package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up inside the config directory.
const FileName = "pantry.yaml"

// EnvConfigPath overrides the settings file location when set.
const EnvConfigPath = "PANTRY_CONFIG"

// schema is the on-disk YAML shape. Durations are Go duration strings; a
// TTL of "never" marks a namespace that never expires.
type schema struct {
	StorageDir string `yaml:"storage_dir"`
	Cache      struct {
		Namespaces map[string]struct {
			TTL  string `yaml:"ttl"`
			Tier string `yaml:"tier"`
		} `yaml:"namespaces"`
	} `yaml:"cache"`
	Sync struct {
		ItemsTimeout string `yaml:"items_timeout"`
		ListTimeout  string `yaml:"list_timeout"`
	} `yaml:"sync"`
	Bus struct {
		PendingQueueCap *int `yaml:"pending_queue_cap"`
	} `yaml:"bus"`
	Storage struct {
		DebounceWindow string `yaml:"debounce_window"`
	} `yaml:"storage"`
}

// Load resolves settings from the given path. An empty path falls back to
// $PANTRY_CONFIG, then <user config dir>/pantry/pantry.yaml. A missing file
// yields pure defaults.
func Load(path string) (*Settings, error) {
	settings := defaults()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return settings, nil
		}
		path = filepath.Join(dir, "pantry", FileName)
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSettingsRead.Error())
	}

	var s schema
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParse.Error()), "path", path)
	}

	return apply(settings, &s)
}

func defaults() *Settings {
	return &Settings{
		StorageDir:      defaultStorageDir(),
		Namespaces:      map[string]NamespaceSetting{},
		ItemsTimeout:    DefaultItemsTimeout,
		ListTimeout:     DefaultListTimeout,
		PendingQueueCap: DefaultPendingCap,
		DebounceWindow:  DefaultDebounceWindow,
	}
}

func defaultStorageDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "pantry", "storage")
	}
	return filepath.Join(dir, "pantry", "storage")
}

func apply(settings *Settings, s *schema) (*Settings, error) {
	if s.StorageDir != "" {
		settings.StorageDir = s.StorageDir
	}

	for name, ns := range s.Cache.Namespaces {
		setting := NamespaceSetting{Tier: ns.Tier}
		if ns.TTL != "" && ns.TTL != "never" {
			ttl, err := time.ParseDuration(ns.TTL)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrSettingsParse.Error()), "namespace", name)
			}
			setting.TTL = ttl
		}
		settings.Namespaces[name] = setting
	}

	if s.Sync.ItemsTimeout != "" {
		d, err := time.ParseDuration(s.Sync.ItemsTimeout)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrSettingsParse.Error())
		}
		settings.ItemsTimeout = d
	}
	if s.Sync.ListTimeout != "" {
		d, err := time.ParseDuration(s.Sync.ListTimeout)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrSettingsParse.Error())
		}
		settings.ListTimeout = d
	}
	if s.Bus.PendingQueueCap != nil {
		settings.PendingQueueCap = *s.Bus.PendingQueueCap
	}
	if s.Storage.DebounceWindow != "" {
		d, err := time.ParseDuration(s.Storage.DebounceWindow)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrSettingsParse.Error())
		}
		settings.DebounceWindow = d
	}

	return settings, nil
}
