// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string (required)
  - DatabaseType: sqlite (default) or postgres
  - AdminKeySalt: Secret for admin key HMAC (required)
  - LinkSlugSalt: Secret for screening link slugs (required)
  - BaseURL: Public origin used in share URLs (default: https://dmless.app)

# CLI Flags and Environment Variables

	-p           PORT
	-d           DATABASE_URL
	-t           DATABASE_TYPE
	-base-url    BASE_URL
	-admin-salt  ADMIN_KEY_SALT
	-slug-salt   LINK_SLUG_SALT

CLI flags take precedence over environment variables. main loads a .env file
into the environment before parsing.

# Share URLs

	cfg.ShareURL("k3J9a") // https://dmless.app/links/k3J9a
*/
package cliparse
