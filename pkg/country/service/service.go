package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/country-mirror/internal/metrics"
	apperrors "github.com/chainsafe/country-mirror/pkg/app/errors"
	"github.com/chainsafe/country-mirror/pkg/country"
	"github.com/chainsafe/country-mirror/pkg/countrystore"
	"github.com/chainsafe/country-mirror/pkg/summary"
	"github.com/chainsafe/country-mirror/pkg/upstream"
)

// Messages returned to API clients.
const (
	msgUpstreamUnavailable = "External data source unavailable"
	msgCountriesUpstream   = "Could not fetch data from restcountries.com"
	msgRatesUpstream       = "Could not fetch data from open.er-api.com"
	msgCountryNotFound     = "Country not found"
	msgImageNotFound       = "Summary image not found"
)

// Store is the data-access interface for the country service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	countrystore.Store
}

// CountrySource fetches the upstream country directory.
//
//go:generate mockery --name CountrySource --output mocks --outpkg mocks --filename mock_country_source.go --with-expecter
type CountrySource interface {
	FetchCountries(ctx context.Context) ([]upstream.CountryPayload, error)
}

// RateSource fetches USD exchange rates keyed by currency code.
//
//go:generate mockery --name RateSource --output mocks --outpkg mocks --filename mock_rate_source.go --with-expecter
type RateSource interface {
	FetchRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// Renderer produces and serves the summary image.
//
//go:generate mockery --name Renderer --output mocks --outpkg mocks --filename mock_renderer.go --with-expecter
type Renderer interface {
	Render(ctx context.Context, trigger string) (*summary.Summary, error)
	Read() ([]byte, error)
}

// Service defines the interface for the country mirror business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Refresh(ctx context.Context) ([]*country.Country, error)
	List(ctx context.Context, filter country.Filter) ([]*country.Country, error)
	Get(ctx context.Context, name string) (*country.Country, error)
	Delete(ctx context.Context, name string) error
	Status(ctx context.Context) (*country.Status, error)
	Image(ctx context.Context) ([]byte, error)
	InsertSample(ctx context.Context) (*country.Country, error)
	Dump(ctx context.Context) ([]*country.Country, error)
	Setup(ctx context.Context) error
	Clear(ctx context.Context) error
}

// Option configures the country service
type Option func(*countryService)

// WithScale overrides the GDP scale draw.
func WithScale(f country.ScaleFunc) Option {
	return func(s *countryService) { s.scale = f }
}

type countryService struct {
	store     Store
	countries CountrySource
	rates     RateSource
	renderer  Renderer
	logger    *zap.Logger
	scale     country.ScaleFunc

	// serializes refresh runs
	refreshMu sync.Mutex
}

// NewService creates a new country service
func NewService(
	store Store,
	countries CountrySource,
	rates RateSource,
	renderer Renderer,
	logger *zap.Logger,
	opts ...Option,
) Service {
	s := &countryService{
		store:     store,
		countries: countries,
		rates:     rates,
		renderer:  renderer,
		logger:    logger,
		scale:     country.RandomScale,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh mirrors both upstreams into the table and returns the rows it wrote.
func (s *countryService) Refresh(ctx context.Context) ([]*country.Country, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	start := time.Now()
	runID := uuid.NewString()
	logger := s.logger.With(zap.String("refresh_id", runID))

	result, err := s.refresh(ctx, logger)
	metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	switch {
	case err == nil:
		metrics.RefreshTotal.WithLabelValues("success").Inc()
	case apperrors.Is(err, apperrors.CategoryUpstreamUnavailable):
		metrics.RefreshTotal.WithLabelValues("upstream_error").Inc()
	default:
		metrics.RefreshTotal.WithLabelValues("error").Inc()
	}
	return result, err
}

func (s *countryService) refresh(ctx context.Context, logger *zap.Logger) ([]*country.Country, error) {
	payloads, err := s.countries.FetchCountries(ctx)
	if err != nil {
		return nil, apperrors.UpstreamUnavailableError(err, msgUpstreamUnavailable, msgCountriesUpstream)
	}

	rates, err := s.rates.FetchRates(ctx)
	if err != nil {
		return nil, apperrors.UpstreamUnavailableError(err, msgUpstreamUnavailable, msgRatesUpstream)
	}

	scale := s.scale()
	refreshedAt := time.Now().UTC()

	countries := make([]*country.Country, 0, len(payloads))
	withoutRate := 0
	for _, p := range payloads {
		c := country.New(p.Name, p.Capital, p.Region, p.Population, p.Flag, p.PrimaryCurrency())
		country.ApplyRate(c, rates, scale)
		if !c.HasRate() {
			withoutRate++
		}
		c.LastRefreshedAt = refreshedAt
		countries = append(countries, c)
	}

	if err := s.store.ReplaceAll(ctx, countries); err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to store refreshed countries: %w", err))
	}

	metrics.CountriesStored.Set(float64(len(countries)))
	metrics.CountriesWithoutRate.Set(float64(withoutRate))
	logger.Info("countries refreshed",
		zap.Int("countries", len(countries)),
		zap.Int("without_rate", withoutRate),
		zap.String("scale", scale.StringFixed(4)))

	// the table is already committed, so a failed render only costs a stale image.
	// The render outlives a client that disconnects after the commit.
	if _, err := s.renderer.Render(context.WithoutCancel(ctx), summary.TriggerRefresh); err != nil {
		logger.Warn("summary render after refresh failed", zap.Error(err))
	}

	return countries, nil
}

func (s *countryService) List(ctx context.Context, filter country.Filter) ([]*country.Country, error) {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return filter.Apply(all), nil
}

func (s *countryService) Get(ctx context.Context, name string) (*country.Country, error) {
	c, err := s.store.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, countrystore.ErrCountryNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, msgCountryNotFound)
		}
		return nil, apperrors.GeneralError(err)
	}
	if details := country.Validate(c); details != nil {
		return nil, apperrors.ValidationError(fmt.Errorf("stored country %q is invalid", c.Name), details)
	}
	return c, nil
}

func (s *countryService) Delete(ctx context.Context, name string) error {
	n, err := s.store.DeleteByName(ctx, name)
	if err != nil {
		return apperrors.GeneralError(err)
	}
	if n == 0 {
		return apperrors.ResourceNotFoundError(nil, msgCountryNotFound)
	}
	return nil
}

func (s *countryService) Status(ctx context.Context) (*country.Status, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return &country.Status{
		TotalCountries:  stats.Total,
		LastRefreshedAt: stats.LastRefreshedAt,
	}, nil
}

func (s *countryService) Image(_ context.Context) ([]byte, error) {
	b, err := s.renderer.Read()
	if err != nil {
		if errors.Is(err, summary.ErrNotRendered) {
			return nil, apperrors.ResourceNotFoundError(err, msgImageNotFound)
		}
		return nil, apperrors.GeneralError(err)
	}
	return b, nil
}

// InsertSample writes the fixed debug row used to check database connectivity.
func (s *countryService) InsertSample(ctx context.Context) (*country.Country, error) {
	code := "NGN"
	c := country.New("Nigeria", "Abuja", "Africa", 20000000, "https://flagcdn.com/ng.svg", &code)
	if err := s.store.InsertOne(ctx, c); err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return c, nil
}

func (s *countryService) Dump(ctx context.Context) ([]*country.Country, error) {
	all, err := s.store.DumpAndRelease(ctx)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return all, nil
}

// Setup drops and recreates the schema.
func (s *countryService) Setup(ctx context.Context) error {
	if err := s.store.DropSchema(ctx); err != nil {
		return apperrors.GeneralError(err)
	}
	if err := s.store.CreateSchema(ctx); err != nil {
		return apperrors.GeneralError(err)
	}
	return nil
}

func (s *countryService) Clear(ctx context.Context) error {
	if err := s.store.Truncate(ctx); err != nil {
		return apperrors.GeneralError(err)
	}
	return nil
}
