package country

import (
	"time"

	"github.com/shopspring/decimal"
)

// Country represents the domain model for a mirrored country record.
//
// ExchangeRate and EstimatedGDP are either both set or both nil.
type Country struct {
	ID              int64
	Name            string
	Capital         string
	Region          string
	Population      int64
	CurrencyCode    *string
	ExchangeRate    *decimal.Decimal
	EstimatedGDP    *int64
	FlagURL         string
	LastRefreshedAt time.Time
}

// New creates a Country without exchange data.
func New(name, capital, region string, population int64, flagURL string, currencyCode *string) *Country {
	return &Country{
		Name:         name,
		Capital:      capital,
		Region:       region,
		Population:   population,
		CurrencyCode: currencyCode,
		FlagURL:      flagURL,
	}
}

// HasRate reports whether exchange data was resolved for the country.
func (c *Country) HasRate() bool {
	return c.ExchangeRate != nil && c.EstimatedGDP != nil
}

// Status summarizes the stored table.
type Status struct {
	TotalCountries  int        `json:"total_countries"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
}

// Response is the JSON shape of a country returned by the API.
type Response struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Capital         string    `json:"capital"`
	Region          string    `json:"region"`
	Population      int64     `json:"population"`
	CurrencyCode    *string   `json:"currency_code"`
	ExchangeRate    *float64  `json:"exchange_rate"`
	EstimatedGDP    *int64    `json:"estimated_gdp"`
	FlagURL         string    `json:"flag_url"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
}

// ToResponse converts a Country into its API representation.
func ToResponse(c *Country) Response {
	resp := Response{
		ID:              c.ID,
		Name:            c.Name,
		Capital:         c.Capital,
		Region:          c.Region,
		Population:      c.Population,
		CurrencyCode:    c.CurrencyCode,
		EstimatedGDP:    c.EstimatedGDP,
		FlagURL:         c.FlagURL,
		LastRefreshedAt: c.LastRefreshedAt,
	}
	if c.ExchangeRate != nil {
		f := c.ExchangeRate.InexactFloat64()
		resp.ExchangeRate = &f
	}
	return resp
}

// ToResponses converts a list of countries; the result is never nil.
func ToResponses(countries []*Country) []Response {
	out := make([]Response, 0, len(countries))
	for _, c := range countries {
		out = append(out, ToResponse(c))
	}
	return out
}
