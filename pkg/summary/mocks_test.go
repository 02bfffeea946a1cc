package summary

import (
	"context"

	"github.com/chainsafe/country-mirror/pkg/country"
	"github.com/chainsafe/country-mirror/pkg/countrystore"
)

// MockReader is a mock implementation of countrystore.Reader
type MockReader struct {
	ListAllFunc    func(ctx context.Context) ([]*country.Country, error)
	FindByNameFunc func(ctx context.Context, name string) (*country.Country, error)
	StatsFunc      func(ctx context.Context) (*countrystore.Stats, error)
}

func (m *MockReader) ListAll(ctx context.Context) ([]*country.Country, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockReader) FindByName(ctx context.Context, name string) (*country.Country, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, countrystore.ErrCountryNotFound
}

func (m *MockReader) Stats(ctx context.Context) (*countrystore.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &countrystore.Stats{}, nil
}
