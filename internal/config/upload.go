package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// UploadConfig bounds claim attachment uploads.
type UploadConfig struct {
	MaxSizeBytes      int64    `mapstructure:"maxSizeBytes"`
	AllowedExtensions []string `mapstructure:"allowedExtensions"`
}

func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		MaxSizeBytes:      5 * 1024 * 1024,
		AllowedExtensions: []string{"pdf", "jpeg", "jpg", "png"},
	}
}

// Allowed reports whether ext (without dot) is on the allow-list.
func (c UploadConfig) Allowed(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	for _, allowed := range c.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

type UploadConfigHolder struct {
	current atomic.Value // holds UploadConfig
}

func NewUploadConfigHolder() (*UploadConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("polisure")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/polisure")
	v.AddConfigPath(".")

	v.SetEnvPrefix("POLISURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultUploadConfig()
	v.SetDefault("upload.maxSizeBytes", defaults.MaxSizeBytes)
	v.SetDefault("upload.allowedExtensions", defaults.AllowedExtensions)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg UploadConfig
	if err := v.UnmarshalKey("upload", &cfg); err != nil {
		return nil, err
	}
	if err := validateUploadConfig(cfg); err != nil {
		return nil, err
	}

	holder := &UploadConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated UploadConfig
		if err := v.UnmarshalKey("upload", &updated); err != nil {
			log.Printf("[upload-config] reload failed: %v", err)
			return
		}
		if err := validateUploadConfig(updated); err != nil {
			log.Printf("[upload-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[upload-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticUploadConfigHolder wraps a fixed config with no file watch.
func NewStaticUploadConfigHolder(cfg UploadConfig) *UploadConfigHolder {
	holder := &UploadConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *UploadConfigHolder) Get() UploadConfig {
	return h.current.Load().(UploadConfig)
}

func validateUploadConfig(cfg UploadConfig) error {
	if cfg.MaxSizeBytes <= 0 {
		return errors.New("upload.maxSizeBytes must be positive")
	}
	if len(cfg.AllowedExtensions) == 0 {
		return errors.New("upload.allowedExtensions cannot be empty")
	}
	return nil
}
