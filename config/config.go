package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	Path   string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Config struct {
	HTTP HTTP
	DB   DB
	Log  struct {
		Level string
	}
}

var v *viper.Viper

func Load(path string) (*Config, error) {
	v = viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 18080)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "book_review.sqlite")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "book_review")
	v.SetDefault("log.level", "info")

	// A missing config file just means defaults.
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Path:   v.GetString("db.path"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
	}
	cfg.Log.Level = v.GetString("log.level")
	return cfg, nil
}

// WatchLogLevel re-applies the log level whenever the config file changes on
// disk. Other keys stay fixed for the life of the process.
func WatchLogLevel(apply func(level string)) {
	if v == nil {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		apply(v.GetString("log.level"))
	})
	v.WatchConfig()
}
