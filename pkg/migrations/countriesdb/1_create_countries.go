package countriesdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/country-mirror/pkg/countrystore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating countries table...")
		return countrystore.CreateTables(ctx, db)
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping countries table...")
		return countrystore.DropTables(ctx, db)
	})
}
