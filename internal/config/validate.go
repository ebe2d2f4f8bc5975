package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEnv           = errors.New("unknown ENV")
	ErrUnknownListingSource = errors.New("unknown LISTING_SOURCE")
	ErrDatabaseURLRequired  = errors.New("DATABASE_URL is required for postgres source")
	ErrSubcategoryBaseURL   = errors.New("SUBCATEGORY_BASE_URL is required when subcategories are enabled")
)

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEnv, c.Env)
	}

	switch c.ListingSource {
	case SourceSeed:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return ErrDatabaseURLRequired
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownListingSource, c.ListingSource)
	}

	if c.Subcategory.Enabled && c.Subcategory.BaseURL == "" {
		return ErrSubcategoryBaseURL
	}

	return nil
}
