// Package countriesdb holds all the migrations for the countries database
package countriesdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the countries database
var Migrations = migrate.NewMigrations()
