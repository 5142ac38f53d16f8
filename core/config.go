package core

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type DBConfig struct {
	Engine   string `koanf:"engine" mapstructure:"engine"`
	Host     string `koanf:"host" mapstructure:"host"`
	Port     int    `koanf:"port" mapstructure:"port"`
	Name     string `koanf:"name" mapstructure:"name"`
	User     string `koanf:"user" mapstructure:"user"`
	Password string `koanf:"password" mapstructure:"password"`
}

type SchedulerConfig struct {
	MaxParallel int `koanf:"max_parallel" mapstructure:"max_parallel"`
}

type Config struct {
	Product     string          `koanf:"product" mapstructure:"product"`
	Mode        string          `koanf:"mode" mapstructure:"mode"`
	Company     string          `koanf:"company" mapstructure:"company"`
	Site        string          `koanf:"site" mapstructure:"site"`
	DataArea    string          `koanf:"data_area" mapstructure:"data_area"`
	ProductLine string          `koanf:"product_line" mapstructure:"product_line"`
	DB          DBConfig        `koanf:"db" mapstructure:"db"`
	Scheduler   SchedulerConfig `koanf:"scheduler" mapstructure:"scheduler"`
}

func DefaultConfig() Config {
	return Config{
		Mode: string(ModeMock),
		Scheduler: SchedulerConfig{
			MaxParallel: 4,
		},
	}
}

func (c Config) Validate() error {
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return err
	}
	if c.Scheduler.MaxParallel < 0 {
		return fmt.Errorf("core: scheduler max_parallel cannot be negative")
	}
	if mode == ModeMock {
		return nil
	}
	switch Product(strings.ToUpper(strings.TrimSpace(c.Product))) {
	case ProductLN, ProductM3, ProductCSI, ProductLawson:
	default:
		return fmt.Errorf("core: live mode requires product LN, M3, CSI or LAWSON, got %q", c.Product)
	}
	if engine := strings.TrimSpace(c.DB.Engine); engine != "" {
		switch strings.ToLower(engine) {
		case "sqlserver", "oracle", "db2", "postgres":
		default:
			return fmt.Errorf("core: unsupported db engine %q", c.DB.Engine)
		}
	}
	return nil
}

// EnvRawConfigLoader overlays process environment onto the raw config map.
// Recognized variables follow the live-mode contract: PRODUCT, MODE, COMPANY,
// SITE, DATA_AREA, PRODUCT_LINE plus DB_TYPE/HOST/PORT/NAME/USER/PASSWORD.
type EnvRawConfigLoader struct {
	Lookup func(key string) (string, bool)
}

func NewEnvRawConfigLoader() *EnvRawConfigLoader {
	return &EnvRawConfigLoader{Lookup: os.LookupEnv}
}

func (l *EnvRawConfigLoader) LoadRaw(context.Context) (map[string]any, error) {
	lookup := os.LookupEnv
	if l != nil && l.Lookup != nil {
		lookup = l.Lookup
	}

	raw := map[string]any{}
	setIfPresent := func(key, envName string) {
		if value, ok := lookup(envName); ok && strings.TrimSpace(value) != "" {
			raw[key] = strings.TrimSpace(value)
		}
	}
	setIfPresent("product", "PRODUCT")
	setIfPresent("mode", "MODE")
	setIfPresent("company", "COMPANY")
	setIfPresent("site", "SITE")
	setIfPresent("data_area", "DATA_AREA")
	setIfPresent("product_line", "PRODUCT_LINE")

	db := map[string]any{}
	setDB := func(key, envName string) {
		if value, ok := lookup(envName); ok && strings.TrimSpace(value) != "" {
			db[key] = strings.TrimSpace(value)
		}
	}
	setDB("engine", "DB_TYPE")
	setDB("host", "DB_HOST")
	setDB("name", "DB_NAME")
	setDB("user", "DB_USER")
	setDB("password", "DB_PASSWORD")
	if value, ok := lookup("DB_PORT"); ok {
		if port, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			db["port"] = port
		}
	}
	if len(db) > 0 {
		raw["db"] = db
	}
	return raw, nil
}
