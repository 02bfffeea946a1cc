package countrystore

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/country-mirror/pkg/country"
)

// CountryDao is a data access object that maps directly to the 'countries' table in PostgreSQL.
type CountryDao struct {
	bun.BaseModel   `bun:"table:countries,alias:c"`
	ID              int64            `bun:"id,pk,autoincrement"`
	Name            string           `bun:"name,notnull,type:varchar(255)"`
	Capital         string           `bun:"capital,nullzero,type:varchar(255)"`
	Region          string           `bun:"region,nullzero,type:varchar(255)"`
	Population      int64            `bun:"population,notnull"`
	CurrencyCode    *string          `bun:"currency_code,type:varchar(3)"`
	ExchangeRate    *decimal.Decimal `bun:"exchange_rate,type:numeric(20,6)"`
	EstimatedGDP    *int64           `bun:"estimated_gdp"`
	FlagURL         string           `bun:"flag_url,nullzero,type:text"`
	LastRefreshedAt time.Time        `bun:"last_refreshed_at,nullzero,notnull,default:current_timestamp"`
}

// toCountryDao converts a country.Country to CountryDao.
func toCountryDao(c *country.Country) *CountryDao {
	return &CountryDao{
		ID:              c.ID,
		Name:            c.Name,
		Capital:         c.Capital,
		Region:          c.Region,
		Population:      c.Population,
		CurrencyCode:    c.CurrencyCode,
		ExchangeRate:    c.ExchangeRate,
		EstimatedGDP:    c.EstimatedGDP,
		FlagURL:         c.FlagURL,
		LastRefreshedAt: c.LastRefreshedAt,
	}
}

// toCountry converts a CountryDao to country.Country.
func toCountry(dao *CountryDao) *country.Country {
	return &country.Country{
		ID:              dao.ID,
		Name:            dao.Name,
		Capital:         dao.Capital,
		Region:          dao.Region,
		Population:      dao.Population,
		CurrencyCode:    dao.CurrencyCode,
		ExchangeRate:    dao.ExchangeRate,
		EstimatedGDP:    dao.EstimatedGDP,
		FlagURL:         dao.FlagURL,
		LastRefreshedAt: dao.LastRefreshedAt,
	}
}

func toCountries(daos []CountryDao) []*country.Country {
	out := make([]*country.Country, len(daos))
	for i := range daos {
		out[i] = toCountry(&daos[i])
	}
	return out
}
