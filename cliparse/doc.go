// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

The Config is built once in main and passed to the store and router.

# Sources

Values are layered, later sources winning:

 1. Defaults (see Default)
 2. YAML file given by -c or CONFIG_FILE
 3. Environment variables, including a .env file (-env-file, or ./.env if present)
 4. CLI flags that were explicitly passed

# Environment Variables

	OPTION_A, OPTION_B    → -option-a, -option-b (default Cats, Dogs)
	DB_HOST               → -db-host   (default postgresql)
	DB_PORT               → -db-port   (default 5432)
	PGDATABASE            → -db-name   (default postgres)
	PGUSER                → -db-user   (default postgres)
	PGPASSWORD            (default postgres, env or file only)
	DB_SSLMODE            → -db-sslmode (default disable)
	DATABASE_URL          → -d (overrides the DB_* connection fields)
	DATABASE_TYPE         → -t (postgres or sqlite, default postgres)
	DB_AUTO_MIGRATE       → -migrate
	APP_ENV               → -env (development or production, default production)
	PORT                  → -p (default 8080)

Retry and pool tuning:

	DB_CONNECT_ATTEMPTS   (default 5)
	DB_CONNECT_DELAY      (default 5s)
	DB_MAX_OPEN_CONNS     (default 10)
	DB_MAX_IDLE_CONNS     (default 5)
	DB_CONN_MAX_LIFETIME  (default 30m)
	SHUTDOWN_TIMEOUT      (default 10s)

# Validation

ParseFlags returns an error for unparseable numbers or durations, a port
outside 1-65535, an unknown APP_ENV or DATABASE_TYPE, or fewer than one
connect attempt.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	store, err := db.Open(cfg, nil)
	// ...
	mux := router.NewRouter(store, cfg, m)
*/
package cliparse
