package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// Persistence
	DataBackend  string // "file" or "sqlite"
	SnapshotPath string
	SQLiteDBPath string

	// Mirror
	MirrorBackend  string // "webhook", "google" or "off"
	SheetsURL      string // Apps Script webhook endpoint
	GoogleSheetID  string
	MirrorViaQueue bool

	// AMQP
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8082"),

		DataBackend:  getEnv("DATA_BACKEND", "file"),
		SnapshotPath: getEnv("SNAPSHOT_PATH", "./data/warsha.json"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/warsha.db"),

		MirrorBackend:  getEnv("MIRROR_BACKEND", "off"),
		SheetsURL:      getEnv("SHEETS_WEBHOOK_URL", ""),
		GoogleSheetID:  getEnv("GOOGLE_SPREADSHEET_ID", ""),
		MirrorViaQueue: getEnvBool("MIRROR_VIA_QUEUE", false),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "warsha"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "mirror_records"),
	}
}

// Validate checks the configuration and returns all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "file":
		if c.SnapshotPath == "" {
			errs = append(errs, "snapshot path cannot be empty when using file backend")
		} else {
			errs = append(errs, ensureDir(c.SnapshotPath)...)
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			errs = append(errs, ensureDir(c.SQLiteDBPath)...)
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [file sqlite]", c.DataBackend))
	}

	switch c.MirrorBackend {
	case "off":
	case "webhook":
		if c.SheetsURL == "" {
			errs = append(errs, "SHEETS_WEBHOOK_URL is required when using webhook mirror")
		} else if parsed, err := url.Parse(c.SheetsURL); err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			errs = append(errs, fmt.Sprintf("invalid webhook URL '%s'", c.SheetsURL))
		}
	case "google":
		if c.GoogleSheetID == "" {
			errs = append(errs, "GOOGLE_SPREADSHEET_ID is required when using google mirror")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid mirror backend '%s': must be one of [off webhook google]", c.MirrorBackend))
	}

	if c.MirrorViaQueue && c.AMQPURL == "" {
		errs = append(errs, "AMQP_URL is required when MIRROR_VIA_QUEUE is set")
	}
	if c.AMQPURL != "" {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errs = append(errs, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func ensureDir(path string) []string {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return []string{fmt.Sprintf("cannot create data directory '%s': %v", dir, err)}
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
