package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Runtime modes
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Database drivers
const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

type Config struct {
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`

	// Informational only, votes are not validated against these
	OptionA string `yaml:"option_a"`
	OptionB string `yaml:"option_b"`

	DatabaseType string `yaml:"database_type"`
	DatabaseURL  string `yaml:"database_url"` // Overrides the DB* fields when set
	DBHost       string `yaml:"db_host"`
	DBPort       string `yaml:"db_port"`
	DBName       string `yaml:"db_name"`
	DBUser       string `yaml:"db_user"`
	DBPassword   string `yaml:"db_password"`
	DBSSLMode    string `yaml:"db_sslmode"`

	ConnectAttempts int           `yaml:"connect_attempts"`
	ConnectDelay    time.Duration `yaml:"connect_delay"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	AutoMigrate     bool          `yaml:"auto_migrate"`

	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default returns the configuration used when nothing is overridden
func Default() Config {
	return Config{
		Port:            8080,
		Env:             EnvProduction,
		OptionA:         "Cats",
		OptionB:         "Dogs",
		DatabaseType:    DatabasePostgres,
		DBHost:          "postgresql",
		DBPort:          "5432",
		DBName:          "postgres",
		DBUser:          "postgres",
		DBPassword:      "postgres",
		DBSSLMode:       "disable",
		ConnectAttempts: 5,
		ConnectDelay:    5 * time.Second,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ShutdownTimeout: 10 * time.Second,
	}
}

// ParseFlags builds the configuration.
// Precedence: CLI flag > environment (.env included) > YAML file > default.
func ParseFlags(args []string) (Config, error) {
	cfg := Default()

	var (
		port        int
		env         string
		optionA     string
		optionB     string
		dbType      string
		dbURL       string
		dbHost      string
		dbPort      string
		dbName      string
		dbUser      string
		dbSSLMode   string
		autoMigrate bool
		configFile  string
		envFile     string
	)

	fs := flag.NewFlagSet("vote-api", flag.ContinueOnError)

	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&env, "env", "", "Runtime mode (development or production)")
	fs.StringVar(&optionA, "option-a", "", "Label of the first option")
	fs.StringVar(&optionB, "option-b", "", "Label of the second option")
	fs.StringVar(&dbType, "t", "", "Database type (postgres or sqlite)")
	fs.StringVar(&dbURL, "d", "", "Database URL (overrides host/port/name/user)")
	fs.StringVar(&dbHost, "db-host", "", "Database host")
	fs.StringVar(&dbPort, "db-port", "", "Database port")
	fs.StringVar(&dbName, "db-name", "", "Database name")
	fs.StringVar(&dbUser, "db-user", "", "Database user")
	fs.StringVar(&dbSSLMode, "db-sslmode", "", "PostgreSQL sslmode")
	fs.BoolVar(&autoMigrate, "migrate", false, "Create the votes table if missing")
	fs.StringVar(&configFile, "c", "", "YAML config file")
	fs.StringVar(&envFile, "env-file", "", "Dotenv file (default .env if present)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}
	if configFile != "" {
		if err := loadConfigFile(configFile, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	// Only flags that were actually passed override
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = port
		case "env":
			cfg.Env = env
		case "option-a":
			cfg.OptionA = optionA
		case "option-b":
			cfg.OptionB = optionB
		case "t":
			cfg.DatabaseType = dbType
		case "d":
			cfg.DatabaseURL = dbURL
		case "db-host":
			cfg.DBHost = dbHost
		case "db-port":
			cfg.DBPort = dbPort
		case "db-name":
			cfg.DBName = dbName
		case "db-user":
			cfg.DBUser = dbUser
		case "db-sslmode":
			cfg.DBSSLMode = dbSSLMode
		case "migrate":
			cfg.AutoMigrate = autoMigrate
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot run with
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		return fmt.Errorf("invalid APP_ENV %q (want %s or %s)", c.Env, EnvDevelopment, EnvProduction)
	}
	if c.DatabaseType != DatabasePostgres && c.DatabaseType != DatabaseSQLite {
		return fmt.Errorf("invalid DATABASE_TYPE %q (want %s or %s)", c.DatabaseType, DatabasePostgres, DatabaseSQLite)
	}
	if c.ConnectAttempts < 1 {
		return errors.New("DB_CONNECT_ATTEMPTS must be at least 1")
	}
	if c.ConnectDelay < 0 {
		return errors.New("DB_CONNECT_DELAY must not be negative")
	}
	if c.DatabaseType == DatabasePostgres && c.DatabaseURL == "" && c.DBHost == "" {
		return errors.New("database host required (use -db-host or DB_HOST env)")
	}
	return nil
}

// IsDevelopment reports whether the server runs in development mode
func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Addr is the listen address for http.Server
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// DSN returns the driver connection string
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DatabaseType == DatabaseSQLite {
		return "vote-api.db"
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   net.JoinHostPort(c.DBHost, c.DBPort),
		Path:   "/" + c.DBName,
	}
	if c.DBSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.DBSSLMode}}.Encode()
	}
	return u.String()
}

func loadEnvFile(path string) error {
	if path == "" {
		// Optional default file
		err := godotenv.Load()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Env, "APP_ENV")
	setString(&cfg.OptionA, "OPTION_A")
	setString(&cfg.OptionB, "OPTION_B")
	setString(&cfg.DatabaseType, "DATABASE_TYPE")
	setString(&cfg.DatabaseURL, "DATABASE_URL")
	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBPort, "DB_PORT")
	setString(&cfg.DBName, "PGDATABASE")
	setString(&cfg.DBUser, "PGUSER")
	setString(&cfg.DBPassword, "PGPASSWORD")
	setString(&cfg.DBSSLMode, "DB_SSLMODE")

	if err := setInt(&cfg.Port, "PORT"); err != nil {
		return err
	}
	if err := setInt(&cfg.ConnectAttempts, "DB_CONNECT_ATTEMPTS"); err != nil {
		return err
	}
	if err := setInt(&cfg.MaxOpenConns, "DB_MAX_OPEN_CONNS"); err != nil {
		return err
	}
	if err := setInt(&cfg.MaxIdleConns, "DB_MAX_IDLE_CONNS"); err != nil {
		return err
	}
	if err := setDuration(&cfg.ConnectDelay, "DB_CONNECT_DELAY"); err != nil {
		return err
	}
	if err := setDuration(&cfg.ConnMaxLifetime, "DB_CONN_MAX_LIFETIME"); err != nil {
		return err
	}
	if err := setDuration(&cfg.ShutdownTimeout, "SHUTDOWN_TIMEOUT"); err != nil {
		return err
	}
	if err := setBool(&cfg.AutoMigrate, "DB_AUTO_MIGRATE"); err != nil {
		return err
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	*dst = n
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	*dst = d
	return nil
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	*dst = b
	return nil
}
