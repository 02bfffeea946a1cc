package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/chainsafe/country-mirror/pkg/config"
	"github.com/chainsafe/country-mirror/pkg/country"
)

const countriesName = "restcountries"

// Currency is one entry of a country's currency list.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CountryPayload is a single country as returned by the directory API.
type CountryPayload struct {
	Name       string     `json:"name"`
	Capital    string     `json:"capital"`
	Region     string     `json:"region"`
	Population int64      `json:"population"`
	Flag       string     `json:"flag"`
	Currencies []Currency `json:"currencies"`
}

// PrimaryCurrency returns the code of the first listed currency, or nil.
// Codes that are not 3 letters, e.g. "(none)", count as missing.
func (p CountryPayload) PrimaryCurrency() *string {
	if len(p.Currencies) == 0 || !country.IsCurrencyCode(p.Currencies[0].Code) {
		return nil
	}
	code := p.Currencies[0].Code
	return &code
}

// CountriesClient fetches the country directory.
type CountriesClient struct {
	*Client
}

// NewCountriesClient creates a client for cfg.CountriesURL.
func NewCountriesClient(cfg *config.UpstreamConfig, opts ...Option) *CountriesClient {
	return &CountriesClient{Client: newClient(countriesName, cfg.CountriesURL, cfg, opts...)}
}

// FetchCountries returns the full country list.
// A payload that is not a JSON array is reported as ErrUnavailable.
func (c *CountriesClient) FetchCountries(ctx context.Context) ([]CountryPayload, error) {
	body, err := c.get(ctx)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsArray() {
		return nil, fmt.Errorf("%s: %w: payload is not a list", countriesName, ErrUnavailable)
	}

	var countries []CountryPayload
	if err := json.Unmarshal(body, &countries); err != nil {
		return nil, fmt.Errorf("%s: %w: decode: %w", countriesName, ErrUnavailable, err)
	}
	return countries, nil
}
