package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Configuration struct {
	// Backend is the origin of the REST backend this frontend renders. All
	// API paths are resolved against it.
	Backend *url.URL
	// Listen is the address the frontend's own HTTP server binds to.
	Listen string
	// StaticDir is the directory holding the stylesheet, logo and the
	// charting collaborator's script.
	StaticDir string
	// SessionKey is the secret used by the cookie session manager.
	SessionKey string
	// CalendarRefresh, MarketRefresh and FeedRefresh are the fixed
	// intervals of the three background pollers.
	CalendarRefresh time.Duration
	MarketRefresh   time.Duration
	FeedRefresh     time.Duration
	// Debug, if true, makes the application log every proxied request.
	Debug bool
}

// ReadConfig loads finfeed.{yaml,toml,...} from the working directory or
// /etc/finfeed, letting FINFEED_* environment variables override any key.
// A missing config file is not an error; every key has a default.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("finfeed")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/finfeed")
	v.SetEnvPrefix("finfeed")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("backend", "http://localhost:5000")
	v.SetDefault("listen", ":8080")
	v.SetDefault("static_dir", "static")
	v.SetDefault("session_key", "")
	v.SetDefault("refresh.calendar", time.Hour)
	v.SetDefault("refresh.market", 30*time.Second)
	v.SetDefault("refresh.feed", time.Minute)
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
	}

	cfg := Configuration{
		Listen:          v.GetString("listen"),
		StaticDir:       v.GetString("static_dir"),
		SessionKey:      v.GetString("session_key"),
		CalendarRefresh: v.GetDuration("refresh.calendar"),
		MarketRefresh:   v.GetDuration("refresh.market"),
		FeedRefresh:     v.GetDuration("refresh.feed"),
		Debug:           v.GetBool("debug"),
	}

	raw := v.GetString("backend")
	u, err := url.Parse(raw)
	if err != nil {
		return Configuration{}, fmt.Errorf("invalid backend url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Configuration{}, fmt.Errorf("backend url %q must include scheme and host", raw)
	}
	cfg.Backend = u

	return cfg, nil
}
