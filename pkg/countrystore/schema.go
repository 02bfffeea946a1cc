package countrystore

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/country-mirror/pkg/pgutil/migrations"
)

// LowerNameIndex backs case-insensitive name lookups.
const LowerNameIndex = "idx_countries_lower_name"

const touchFunction = "countries_touch_last_refreshed_at"

// touchStatements keep last_refreshed_at current on every row update.
var touchStatements = []string{
	`CREATE OR REPLACE FUNCTION ` + touchFunction + `() RETURNS trigger AS $$
BEGIN
	NEW.last_refreshed_at = now();
	RETURN NEW;
END;
$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS ` + touchFunction + ` ON countries`,
	`CREATE TRIGGER ` + touchFunction + ` BEFORE UPDATE ON countries
	FOR EACH ROW EXECUTE FUNCTION ` + touchFunction + `()`,
}

// CreateTables creates the countries table, its lookup index and the
// timestamp trigger. It is idempotent.
func CreateTables(ctx context.Context, db bun.IDB) error {
	if err := mghelper.CreateSchema(ctx, db, &CountryDao{}); err != nil {
		return fmt.Errorf("create countries table: %w", err)
	}
	if err := mghelper.CreateExprIndex(ctx, db, &CountryDao{}, LowerNameIndex, "lower(name)"); err != nil {
		return fmt.Errorf("create %s: %w", LowerNameIndex, err)
	}
	if err := mghelper.ExecStatements(ctx, db, touchStatements...); err != nil {
		return fmt.Errorf("create %s trigger: %w", touchFunction, err)
	}
	return nil
}

// DropTables removes the countries table and its trigger function.
func DropTables(ctx context.Context, db bun.IDB) error {
	if err := mghelper.DropTables(ctx, db, &CountryDao{}); err != nil {
		return fmt.Errorf("drop countries table: %w", err)
	}
	if err := mghelper.ExecStatements(ctx, db, `DROP FUNCTION IF EXISTS `+touchFunction+`()`); err != nil {
		return fmt.Errorf("drop %s function: %w", touchFunction, err)
	}
	return nil
}
