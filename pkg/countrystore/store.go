package countrystore

import (
	"context"
	"errors"
	"time"

	"github.com/chainsafe/country-mirror/pkg/country"
)

// ErrCountryNotFound is returned when a name lookup finds no matching record.
var ErrCountryNotFound = errors.New("country not found")

// Reader defines the read side of the countries table.
type Reader interface {
	ListAll(ctx context.Context) ([]*country.Country, error)
	FindByName(ctx context.Context, name string) (*country.Country, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Store defines the interface for country data persistence
type Store interface {
	Reader
	DeleteByName(ctx context.Context, name string) (int64, error)
	ReplaceAll(ctx context.Context, countries []*country.Country) error
	InsertOne(ctx context.Context, c *country.Country) error
	Truncate(ctx context.Context) error
	DumpAndRelease(ctx context.Context) ([]*country.Country, error)
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error
}

// Stats aggregates the countries table.
type Stats struct {
	Total int
	// LastRefreshedAt is the most recent last_refreshed_at, nil for an empty table.
	LastRefreshedAt *time.Time
}
