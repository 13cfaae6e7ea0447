// Package config загружает настройки сервиса и стартовый каталог активностей.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"activity-signup-service/internal/model"
)

type Config struct {
	Addr           string
	StaticDir      string
	ActivitiesFile string
}

// Load читает конфигурацию из переменных окружения.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env опционален: переменные могут приходить из окружения (Docker, CI и т.п.)
	}

	cfg := &Config{
		Addr:           os.Getenv("HTTP_ADDR"),
		StaticDir:      os.Getenv("STATIC_DIR"),
		ActivitiesFile: os.Getenv("ACTIVITIES_FILE"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	if cfg.ActivitiesFile == "" {
		cfg.ActivitiesFile = "config/activities.toml"
	}

	return cfg, nil
}

// LoadRoster читает стартовый каталог активностей из TOML-файла.
// Ключ таблицы — имя активности (имена с пробелами записываются в кавычках).
func LoadRoster(path string) (model.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read activities file: %w", err)
	}

	var roster model.Roster
	if err := toml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parse activities file: %w", err)
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("activities file %s contains no activities", path)
	}

	for name, a := range roster {
		if a.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q: max_participants must be positive", name)
		}
		// У активностей без записавшихся participants может отсутствовать в файле
		if a.Participants == nil {
			a.Participants = make([]string, 0)
			roster[name] = a
		}
	}

	return roster, nil
}
