package countrystore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/country-mirror/pkg/country"
)

var _ Store = (*pgStore)(nil)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the country store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) ListAll(ctx context.Context) ([]*country.Country, error) {
	var daos []CountryDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return toCountries(daos), nil
}

func (s *pgStore) FindByName(ctx context.Context, name string) (*country.Country, error) {
	dao := new(CountryDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("lower(name) = lower(?)", name).
		Order("id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCountryNotFound
		}
		return nil, fmt.Errorf("failed to find country: %w", err)
	}
	return toCountry(dao), nil
}

func (s *pgStore) DeleteByName(ctx context.Context, name string) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*CountryDao)(nil)).
		Where("lower(name) = lower(?)", name).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete country: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// ReplaceAll swaps the table contents inside one transaction, so readers
// observe either the previous rows or the new ones. Identity restarts, and
// the generated ids are written back onto countries.
func (s *pgStore) ReplaceAll(ctx context.Context, countries []*country.Country) error {
	daos := make([]*CountryDao, len(countries))
	for i, c := range countries {
		daos[i] = toCountryDao(c)
		daos[i].ID = 0
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewTruncateTable().Model((*CountryDao)(nil)).Exec(ctx); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
		if len(daos) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&daos).Returning("id, last_refreshed_at").Exec(ctx); err != nil {
			return fmt.Errorf("bulk insert: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace countries: %w", err)
	}

	for i, dao := range daos {
		countries[i].ID = dao.ID
		if countries[i].LastRefreshedAt.IsZero() {
			countries[i].LastRefreshedAt = dao.LastRefreshedAt
		}
	}
	return nil
}

func (s *pgStore) InsertOne(ctx context.Context, c *country.Country) error {
	dao := toCountryDao(c)
	dao.ID = 0

	if _, err := s.db.NewInsert().Model(dao).Returning("id, last_refreshed_at").Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert country: %w", err)
	}

	c.ID = dao.ID
	c.LastRefreshedAt = dao.LastRefreshedAt
	return nil
}

func (s *pgStore) Truncate(ctx context.Context) error {
	if _, err := s.db.NewTruncateTable().Model((*CountryDao)(nil)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to truncate countries: %w", err)
	}
	return nil
}

func (s *pgStore) Stats(ctx context.Context) (*Stats, error) {
	var (
		total int
		last  sql.NullTime
	)
	err := s.db.NewSelect().
		Model((*CountryDao)(nil)).
		ColumnExpr("count(*)").
		ColumnExpr("max(last_refreshed_at)").
		Scan(ctx, &total, &last)
	if err != nil {
		return nil, fmt.Errorf("failed to read country stats: %w", err)
	}

	stats := &Stats{Total: total}
	if last.Valid {
		t := last.Time
		stats.LastRefreshedAt = &t
	}
	return stats, nil
}

// DumpAndRelease lists every row on a dedicated connection and returns that
// connection's resources before returning, leaving the pool itself open.
func (s *pgStore) DumpAndRelease(ctx context.Context) ([]*country.Country, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	var daos []CountryDao
	scanErr := conn.NewSelect().
		Model(&daos).
		Order("id ASC").
		Scan(ctx)
	closeErr := conn.Close()

	if scanErr != nil {
		return nil, fmt.Errorf("failed to dump countries: %w", scanErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to release connection: %w", closeErr)
	}
	return toCountries(daos), nil
}

func (s *pgStore) CreateSchema(ctx context.Context) error {
	return CreateTables(ctx, s.db)
}

func (s *pgStore) DropSchema(ctx context.Context) error {
	return DropTables(ctx, s.db)
}
