package internal

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	defaultPort          = 9191
	defaultComputerDelay = time.Millisecond * 700
)

type Config struct {
	Stage string
	Port  int
	// Empty disables analytics
	DatabaseUrl string
	LogLevel    log.Level
	// Pause between the human's attack and the computer's answer
	ComputerDelay time.Duration
}

// Reads the config from the environment. Outside prod a .env file is
// loaded first.
func LoadConfig() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:         os.Getenv("STAGE"),
		Port:          defaultPort,
		DatabaseUrl:   os.Getenv("DATABASE_URL"),
		LogLevel:      log.InfoLevel,
		ComputerDelay: defaultComputerDelay,
	}
	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", cfg.Stage)
	}

	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Port = port
	}

	if levelEnv := os.Getenv("LOG_LEVEL"); levelEnv != "" {
		level, err := log.ParseLevel(levelEnv)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	if delayEnv := os.Getenv("COMPUTER_DELAY_MS"); delayEnv != "" {
		ms, err := strconv.Atoi(delayEnv)
		if err != nil || ms < 0 {
			return Config{}, fmt.Errorf("invalid COMPUTER_DELAY_MS: %s", delayEnv)
		}
		cfg.ComputerDelay = time.Duration(ms) * time.Millisecond
	}

	return cfg, nil
}

func MustLoadConfig() Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}
