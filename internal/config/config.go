package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/hrutik5321/rollpair/internal/db"
	"github.com/hrutik5321/rollpair/internal/rolls"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the suggest and browse commands.
type Config struct {
	MaxWidth float64  `yaml:"max_width"`
	Database Database `yaml:"database"`
}

type Database struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// ConnConfig converts the database section for the store.
func (d Database) ConnConfig() db.ConnConfig {
	return db.ConnConfig{
		Host:     d.Host,
		Port:     d.Port,
		User:     d.User,
		Password: d.Password,
		Database: d.Name,
	}
}

func Defaults() Config {
	return Config{
		MaxWidth: rolls.DefaultMaxWidth,
		Database: Database{
			Host: "localhost",
			Port: "5432",
			User: "postgres",
		},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty
// or the file does not exist) and environment variables, in that order.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("ROLLPAIR_MAX_WIDTH"); v != "" {
		mw, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("ROLLPAIR_MAX_WIDTH: %w", err)
		}
		cfg.MaxWidth = mw
	}
	if v := os.Getenv("PGHOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("PGPORT"); v != "" {
		cfg.Database.Port = v
	}
	if v := os.Getenv("PGUSER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("PGPASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("PGDATABASE"); v != "" {
		cfg.Database.Name = v
	}

	return cfg, nil
}
