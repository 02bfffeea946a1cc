package upstream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/chainsafe/country-mirror/pkg/config"
)

const (
	ratesName     = "open.er-api"
	resultSuccess = "success"
)

// RatesClient fetches USD based exchange rates.
type RatesClient struct {
	*Client
}

// NewRatesClient creates a client for cfg.RatesURL.
func NewRatesClient(cfg *config.UpstreamConfig, opts ...Option) *RatesClient {
	return &RatesClient{Client: newClient(ratesName, cfg.RatesURL, cfg, opts...)}
}

// FetchRates returns currency code to rate.
// A response whose result field is not "success" is reported as ErrUnavailable.
func (c *RatesClient) FetchRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	body, err := c.get(ctx)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%s: %w: invalid JSON", ratesName, ErrUnavailable)
	}
	if result := gjson.GetBytes(body, "result").String(); result != resultSuccess {
		return nil, fmt.Errorf("%s: %w: result %q", ratesName, ErrUnavailable, result)
	}

	rawRates := gjson.GetBytes(body, "rates")
	if !rawRates.IsObject() {
		return nil, fmt.Errorf("%s: %w: rates missing", ratesName, ErrUnavailable)
	}

	var rates map[string]decimal.Decimal
	if err := json.Unmarshal([]byte(rawRates.Raw), &rates); err != nil {
		return nil, fmt.Errorf("%s: %w: decode rates: %w", ratesName, ErrUnavailable, err)
	}
	return rates, nil
}
