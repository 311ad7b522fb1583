package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"
)

type Config struct {
	Server struct {
		Port       string `toml:"port"`
		EnableAuth bool   `toml:"enable_auth"`
	} `toml:"server"`

	Auth struct {
		RedisURL    string `toml:"redis_url"`
		TokenHeader string `toml:"token_header"`
		TokenKey    string `toml:"token_key"`
	} `toml:"auth"`

	Database struct {
		DSN           string `toml:"dsn"`
		MigrationsDir string `toml:"migrations_dir"`
	} `toml:"database"`

	Competition struct {
		Criteria             []string `toml:"criteria"`
		MaxMarksPerCriterion int      `toml:"max_marks_per_criterion"`
		CompetitionName      string   `toml:"competition_name"`
		CollegeName          string   `toml:"college_name"`
		ClubName             string   `toml:"club_name"`
	} `toml:"competition"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(
			"error reading config file %s\n> Error: %w\n> Content:\n%s",
			path,
			err,
			string(data),
		)
	}

	if config.Server.Port == "" {
		return nil, fmt.Errorf("Server port is not specified in config, use a value like :8080")
	}
	if config.Competition.MaxMarksPerCriterion == 0 {
		config.Competition.MaxMarksPerCriterion = 20
	}

	logger.Debug.Printf("Loaded competition config: %+v", config.Competition)

	return &config, nil
}
