package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort              = "3000"
	DefaultQueueKey          = "task_queue"
	DefaultLockKey           = "task_queue_lock"
	DefaultLockTTL           = 60 * time.Second
	DefaultMaxInsertAttempts = 3
	DefaultRetryAfter        = 2 * time.Second
	DefaultNotionBaseURL     = "https://api.notion.com"
	DefaultNotionVersion     = "2022-06-28"
	DefaultDatastoreNS       = "taskqueue"
)

type Config struct {
	Port               string        `yaml:"Port"`
	RedisURL           string        `yaml:"RedisURL"`
	RedisToken         string        `yaml:"RedisToken"`
	QueueKey           string        `yaml:"QueueKey"`
	LockKey            string        `yaml:"LockKey"`
	LockTTL            time.Duration `yaml:"LockTTL"`
	MaxInsertAttempts  int           `yaml:"MaxInsertAttempts"`
	DefaultRetryAfter  time.Duration `yaml:"DefaultRetryAfter"`
	NotionBaseURL      string        `yaml:"NotionBaseURL"`
	NotionVersion      string        `yaml:"NotionVersion"`
	GoogleCloudProject string        `yaml:"GoogleCloudProject"`
	DatastoreNamespace string        `yaml:"DatastoreNamespace"`
}

func defaults() Config {
	return Config{
		Port:               DefaultPort,
		QueueKey:           DefaultQueueKey,
		LockKey:            DefaultLockKey,
		LockTTL:            DefaultLockTTL,
		MaxInsertAttempts:  DefaultMaxInsertAttempts,
		DefaultRetryAfter:  DefaultRetryAfter,
		NotionBaseURL:      DefaultNotionBaseURL,
		NotionVersion:      DefaultNotionVersion,
		DatastoreNamespace: DefaultDatastoreNS,
	}
}

// Load applies, in order: defaults, the yaml file named by CONFIG_FILE and
// environment variables.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		err := loadFile(path, &cfg)
		if err != nil {
			return Config{}, err
		}
	}

	err := loadEnv(&cfg)
	if err != nil {
		return Config{}, err
	}

	err = cfg.validate()
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Error reading config file %s: %s", path, err)
	}
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return fmt.Errorf("Error parsing config file %s: %s", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.RedisToken, "REDIS_TOKEN")
	setString(&cfg.QueueKey, "QUEUE_KEY")
	setString(&cfg.LockKey, "LOCK_KEY")
	setString(&cfg.NotionBaseURL, "NOTION_BASE_URL")
	setString(&cfg.NotionVersion, "NOTION_VERSION")
	setString(&cfg.GoogleCloudProject, "GOOGLE_CLOUD_PROJECT")
	setString(&cfg.DatastoreNamespace, "DATASTORE_NAMESPACE")

	if value := os.Getenv("LOCK_TTL"); value != "" {
		ttl, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("Invalid LOCK_TTL '%s': %s", value, err)
		}
		cfg.LockTTL = ttl
	}
	if value := os.Getenv("MAX_INSERT_ATTEMPTS"); value != "" {
		attempts, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("Invalid MAX_INSERT_ATTEMPTS '%s': %s", value, err)
		}
		cfg.MaxInsertAttempts = attempts
	}
	return nil
}

func setString(dst *string, envVar string) {
	if value := os.Getenv(envVar); value != "" {
		*dst = value
	}
}

func (cfg Config) validate() error {
	if cfg.RedisURL == "" {
		return fmt.Errorf("Missing mandatory setting REDIS_URL")
	}
	if cfg.LockTTL <= 0 {
		return fmt.Errorf("Lock ttl must be positive, got %s", cfg.LockTTL)
	}
	if cfg.MaxInsertAttempts <= 0 {
		return fmt.Errorf("Max insert attempts must be positive, got %d", cfg.MaxInsertAttempts)
	}
	return nil
}
