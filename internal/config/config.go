package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string
	Timezone string

	StoreDriver string
	StorePath   string
	// DBDSN wins over the MYSQL_* fields when set.
	DBDSN string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	// RedisAddr empty disables the idempotency middleware.
	RedisAddr string
	RedisDB   int

	IdempTTLSecs int
	SeedLevels   string
}

func defaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEZONE", "Europe/Madrid")
	v.SetDefault("STORE_DRIVER", DriverFile)
	v.SetDefault("STORE_PATH", "data/db.json")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("MYSQL_HOST", "mysql")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_DB", "siged")
	v.SetDefault("MYSQL_USER", "siged")
	v.SetDefault("MYSQL_PASS", "siged")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("IDEMPOTENCY_TTL_SECONDS", 300)
	v.SetDefault("SEED_LEVELS", "1:10,2:15,3:20,4:25,5:30")
}

// Load reads an optional .env file, then the process environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()
	return v
}

func FromViper(v *viper.Viper) *Config {
	return &Config{
		AppPort:  v.GetString("APP_PORT"),
		AppEnv:   strings.ToLower(v.GetString("APP_ENV")),
		LogLevel: v.GetString("LOG_LEVEL"),
		Timezone: v.GetString("TIMEZONE"),

		StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
		StorePath:   v.GetString("STORE_PATH"),
		DBDSN:       v.GetString("DB_DSN"),

		MySQLHost: v.GetString("MYSQL_HOST"),
		MySQLPort: v.GetString("MYSQL_PORT"),
		MySQLDB:   v.GetString("MYSQL_DB"),
		MySQLUser: v.GetString("MYSQL_USER"),
		MySQLPass: v.GetString("MYSQL_PASS"),

		RedisAddr: v.GetString("REDIS_ADDR"),
		RedisDB:   v.GetInt("REDIS_DB"),

		IdempTTLSecs: v.GetInt("IDEMPOTENCY_TTL_SECONDS"),
		SeedLevels:   v.GetString("SEED_LEVELS"),
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err)
	}
	switch c.StoreDriver {
	case DriverMemory:
	case DriverFile:
		if c.StorePath == "" {
			return errors.New("missing STORE_PATH for file store")
		}
	case DriverMySQL:
		if c.DBDSN != "" {
			break
		}
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (DB_DSN or MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case DriverPostgres, DriverSQLite:
		if c.DBDSN == "" {
			return fmt.Errorf("missing DB_DSN for %s store", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.IdempTTLSecs <= 0 {
		return fmt.Errorf("invalid IDEMPOTENCY_TTL_SECONDS %d", c.IdempTTLSecs)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Production() bool { return c.AppEnv == "production" || c.AppEnv == "prod" }

// Location resolves TIMEZONE, the zone "today" is computed in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

// DSN returns the connection string for the SQL drivers.
func (c *Config) DSN() string {
	if c.DBDSN != "" || c.StoreDriver != DriverMySQL {
		return c.DBDSN
	}
	return c.MySQLDSN()
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
