package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr    string        `env:"HTTP_ADDR" envDefault:":8081"`
	SoftTimeout time.Duration `env:"SOFT_TIMEOUT" envDefault:"20s"`

	// StoreDriver is "postgres" or "memory".
	StoreDriver      string        `env:"STORE_DRIVER" envDefault:"postgres"`
	DesignerCacheTTL time.Duration `env:"DESIGNER_CACHE_TTL" envDefault:"30s"`

	DatabaseURL     string `env:"DATABASE_URL" envDefault:""`
	PostgresHost    string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort    string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser    string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB      string `env:"POSTGRES_DB" envDefault:"vendorflow"`
	PostgresSSLMode string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	KafkaBrokers        string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaCatalogTopic   string `env:"KAFKA_CATALOG_TOPIC" envDefault:"catalog.designers"`
	KafkaGroupID        string `env:"KAFKA_GROUP_ID" envDefault:"vendorflow"`
	KafkaDLQTopic       string `env:"KAFKA_DLQ_TOPIC" envDefault:"catalog.designers.dlq"`
	KafkaInventoryTopic string `env:"KAFKA_INVENTORY_TOPIC" envDefault:"inventory.refresh"`

	// CatalogFile is the designer feed replayed by cmd/publisher.
	CatalogFile string `env:"CATALOG_FILE" envDefault:"web/designers.json"`

	SMTPHost     string   `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort     int      `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string   `env:"SMTP_USER" envDefault:""`
	SMTPPassword string   `env:"SMTP_PASSWORD" envDefault:""`
	MailFrom     string   `env:"MAIL_FROM" envDefault:"orders@localhost"`
	MailCC       []string `env:"MAIL_CC" envSeparator:","`
	MailBCC      []string `env:"MAIL_BCC" envSeparator:","`

	MultiVendorDesignerID int `env:"MULTI_VENDOR_DESIGNER_ID" envDefault:"47"`
	DesignersPerPage      int `env:"DESIGNERS_PER_PAGE" envDefault:"20"`
	FanoutLimit           int `env:"FANOUT_LIMIT" envDefault:"8"`

	// JobStore is "memory" or "redis".
	JobStore  string        `env:"JOB_STORE" envDefault:"memory"`
	JobTTL    time.Duration `env:"JOB_TTL" envDefault:"1h"`
	RedisAddr string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func LoadConfig(_ string) (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	switch c.StoreDriver {
	case "postgres", "memory":
	default:
		return Config{}, fmt.Errorf("config parse: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.JobStore {
	case "memory", "redis":
	default:
		return Config{}, fmt.Errorf("config parse: unknown JOB_STORE %q", c.JobStore)
	}
	return c, nil
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) PgDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresUser,
		c.PostgresPass,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
		c.PostgresSSLMode,
	)
}

// ConfigureLogger applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func (c Config) ConfigureLogger() error {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(lvl)
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
