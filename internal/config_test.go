package internal

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		expectErr bool
		expected  Config
	}{
		{
			name: "defaults",
			env:  map[string]string{"STAGE": StageProd},
			expected: Config{
				Stage:         StageProd,
				Port:          defaultPort,
				LogLevel:      log.InfoLevel,
				ComputerDelay: defaultComputerDelay,
			},
		},
		{
			name: "everything set",
			env: map[string]string{
				"STAGE":             StageProd,
				"PORT":              "8080",
				"DATABASE_URL":      "postgres://localhost/battleship",
				"LOG_LEVEL":         "debug",
				"COMPUTER_DELAY_MS": "0",
			},
			expected: Config{
				Stage:         StageProd,
				Port:          8080,
				DatabaseUrl:   "postgres://localhost/battleship",
				LogLevel:      log.DebugLevel,
				ComputerDelay: 0,
			},
		},
		{
			name:     "delay in milliseconds",
			env:      map[string]string{"STAGE": StageProd, "COMPUTER_DELAY_MS": "250"},
			expected: Config{Stage: StageProd, Port: defaultPort, LogLevel: log.InfoLevel, ComputerDelay: 250 * time.Millisecond},
		},
		{name: "invalid port", env: map[string]string{"STAGE": StageProd, "PORT": "http"}, expectErr: true},
		{name: "negative delay", env: map[string]string{"STAGE": StageProd, "COMPUTER_DELAY_MS": "-1"}, expectErr: true},
		{name: "invalid level", env: map[string]string{"STAGE": StageProd, "LOG_LEVEL": "loud"}, expectErr: true},
		{name: "invalid stage", env: map[string]string{"STAGE": "staging"}, expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, key := range []string{"STAGE", "PORT", "DATABASE_URL", "LOG_LEVEL", "COMPUTER_DELAY_MS"} {
				t.Setenv(key, test.env[key])
			}

			cfg, err := LoadConfig()
			if test.expectErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cfg != test.expected {
				t.Fatalf("expected config: %+v\tgot: %+v", test.expected, cfg)
			}
		})
	}
}
