package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/country-mirror/pkg/app/errors"
	"github.com/chainsafe/country-mirror/pkg/country"
	"github.com/chainsafe/country-mirror/pkg/country/service/mocks"
	"github.com/chainsafe/country-mirror/pkg/countrystore"
	"github.com/chainsafe/country-mirror/pkg/summary"
	"github.com/chainsafe/country-mirror/pkg/upstream"
)

type deps struct {
	store     *mocks.Store
	countries *mocks.CountrySource
	rates     *mocks.RateSource
	renderer  *mocks.Renderer
}

func newTestService(t *testing.T) (Service, deps) {
	t.Helper()
	d := deps{
		store:     mocks.NewStore(t),
		countries: mocks.NewCountrySource(t),
		rates:     mocks.NewRateSource(t),
		renderer:  mocks.NewRenderer(t),
	}
	fixedScale := func() decimal.Decimal { return decimal.NewFromInt(1500) }
	svc := NewService(d.store, d.countries, d.rates, d.renderer, zap.NewNop(), WithScale(fixedScale))
	return svc, d
}

func strPtr(s string) *string { return &s }

func samplePayloads() []upstream.CountryPayload {
	return []upstream.CountryPayload{
		{
			Name: "Nigeria", Capital: "Abuja", Region: "Africa", Population: 206139589,
			Flag:       "https://flagcdn.com/ng.svg",
			Currencies: []upstream.Currency{{Code: "NGN", Name: "Nigerian naira", Symbol: "₦"}},
		},
		{
			Name: "Antarctica", Region: "Polar", Population: 1000,
			Flag: "https://flagcdn.com/aq.svg",
		},
		{
			Name: "Bhutan", Capital: "Thimphu", Region: "Asia", Population: 771608,
			Currencies: []upstream.Currency{{Code: "BTN"}, {Code: "INR"}},
		},
		{
			Name: "Ghana", Capital: "Accra", Region: "Africa", Population: 31072940,
			Currencies: []upstream.Currency{{Code: "GHS"}},
		},
	}
}

func sampleRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"NGN": decimal.RequireFromString("1600.23"),
		"INR": decimal.RequireFromString("83.2"),
		"GHS": decimal.Zero,
	}
}

func TestCountryService_Refresh_Success(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t)

	d.countries.EXPECT().FetchCountries(ctx).Return(samplePayloads(), nil).Once()
	d.rates.EXPECT().FetchRates(ctx).Return(sampleRates(), nil).Once()
	d.store.EXPECT().ReplaceAll(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, cs []*country.Country) error {
			for i, c := range cs {
				c.ID = int64(i + 1)
			}
			return nil
		}).Once()
	d.renderer.EXPECT().Render(mock.Anything, summary.TriggerRefresh).Return(&summary.Summary{Total: 4}, nil).Once()

	got, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 countries, got %d", len(got))
	}

	nigeria := got[0]
	if nigeria.ID != 1 || nigeria.CurrencyCode == nil || *nigeria.CurrencyCode != "NGN" {
		t.Fatalf("unexpected nigeria row: %+v", nigeria)
	}
	if nigeria.EstimatedGDP == nil || *nigeria.EstimatedGDP != 193228088 {
		t.Fatalf("expected estimated gdp 193228088, got %v", nigeria.EstimatedGDP)
	}
	if nigeria.LastRefreshedAt.IsZero() {
		t.Fatal("expected last_refreshed_at to be set")
	}

	antarctica := got[1]
	if antarctica.CurrencyCode != nil || antarctica.ExchangeRate != nil || antarctica.EstimatedGDP != nil {
		t.Fatalf("expected nulls for country without currencies, got %+v", antarctica)
	}

	// only the first listed currency counts, and BTN is not quoted
	bhutan := got[2]
	if bhutan.CurrencyCode == nil || *bhutan.CurrencyCode != "BTN" || bhutan.HasRate() {
		t.Fatalf("unexpected bhutan row: %+v", bhutan)
	}

	ghana := got[3]
	if ghana.ExchangeRate != nil || ghana.EstimatedGDP != nil {
		t.Fatalf("expected zero rate to be treated as no rate, got %+v", ghana)
	}

	for _, c := range got[1:] {
		if !c.LastRefreshedAt.Equal(nigeria.LastRefreshedAt) {
			t.Fatalf("expected one refresh instant for all rows")
		}
	}
}

func TestCountryService_Refresh_CountriesUpstreamDown(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t)

	d.countries.EXPECT().FetchCountries(ctx).Return(nil, upstream.ErrUnavailable).Once()

	_, err := svc.Refresh(ctx)
	if !apperrors.Is(err, apperrors.CategoryUpstreamUnavailable) {
		t.Fatalf("expected CategoryUpstreamUnavailable, got %v", err)
	}
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %T", err)
	}
	if svcErr.Message != "External data source unavailable" {
		t.Fatalf("unexpected message %q", svcErr.Message)
	}
	if svcErr.Details != "Could not fetch data from restcountries.com" {
		t.Fatalf("unexpected details %v", svcErr.Details)
	}
}

func TestCountryService_Refresh_RatesUpstreamDownLeavesTableAlone(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t)

	d.countries.EXPECT().FetchCountries(ctx).Return(samplePayloads(), nil).Once()
	d.rates.EXPECT().FetchRates(ctx).Return(nil, upstream.ErrUnavailable).Once()

	_, err := svc.Refresh(ctx)
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) || svcErr.StatusCode() != 503 {
		t.Fatalf("expected 503 service error, got %v", err)
	}
	if svcErr.Details != "Could not fetch data from open.er-api.com" {
		t.Fatalf("unexpected details %v", svcErr.Details)
	}
	d.store.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
}

func TestCountryService_Refresh_StoreFailure(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t)

	d.countries.EXPECT().FetchCountries(ctx).Return(samplePayloads(), nil).Once()
	d.rates.EXPECT().FetchRates(ctx).Return(sampleRates(), nil).Once()
	d.store.EXPECT().ReplaceAll(ctx, mock.Anything).Return(errors.New("tx aborted")).Once()

	_, err := svc.Refresh(ctx)
	if !apperrors.Is(err, apperrors.CategoryGeneralError) {
		t.Fatalf("expected CategoryGeneralError, got %v", err)
	}
	d.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestCountryService_Refresh_RenderFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t)

	d.countries.EXPECT().FetchCountries(ctx).Return(samplePayloads()[:1], nil).Once()
	d.rates.EXPECT().FetchRates(ctx).Return(sampleRates(), nil).Once()
	d.store.EXPECT().ReplaceAll(ctx, mock.Anything).Return(nil).Once()
	d.renderer.EXPECT().Render(mock.Anything, summary.TriggerRefresh).Return(nil, errors.New("disk full")).Once()

	got, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 country, got %d", len(got))
	}
}

func TestCountryService_Refresh_RenderSurvivesClientCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc, d := newTestService(t)

	d.countries.EXPECT().FetchCountries(mock.Anything).Return(samplePayloads()[:1], nil).Once()
	d.rates.EXPECT().FetchRates(mock.Anything).Return(sampleRates(), nil).Once()
	d.store.EXPECT().ReplaceAll(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, []*country.Country) error {
			// client goes away once the rows are committed
			cancel()
			return nil
		}).Once()
	d.renderer.EXPECT().Render(mock.Anything, summary.TriggerRefresh).
		RunAndReturn(func(renderCtx context.Context, _ string) (*summary.Summary, error) {
			if err := renderCtx.Err(); err != nil {
				t.Fatalf("render context cancelled with the request: %v", err)
			}
			return &summary.Summary{Total: 1}, nil
		}).Once()

	if _, err := svc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
}

func TestCountryService_List_FiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t)

	gdp := func(v int64) *int64 { return &v }
	d.store.EXPECT().ListAll(ctx).Return([]*country.Country{
		{ID: 1, Name: "Nigeria", Region: "Africa", CurrencyCode: strPtr("NGN"), EstimatedGDP: gdp(100)},
		{ID: 2, Name: "France", Region: "Europe", CurrencyCode: strPtr("EUR"), EstimatedGDP: gdp(900)},
		{ID: 3, Name: "Ghana", Region: "Africa", CurrencyCode: strPtr("GHS")},
		{ID: 4, Name: "Kenya", Region: "africa", CurrencyCode: strPtr("KES"), EstimatedGDP: gdp(300)},
	}, nil).Once()

	got, err := svc.List(ctx, country.Filter{Region: "AFRICA", Sort: country.SortGDPDesc})
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	want := []string{"Kenya", "Nigeria", "Ghana"}
	if len(got) != len(want) {
		t.Fatalf("expected %d countries, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, got[i].Name)
		}
	}
}

func TestCountryService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, d := newTestService(t)
		d.store.EXPECT().FindByName(ctx, "nigeria").
			Return(&country.Country{ID: 1, Name: "Nigeria", Population: 206139589, CurrencyCode: strPtr("NGN")}, nil).Once()

		c, err := svc.Get(ctx, "nigeria")
		if err != nil {
			t.Fatalf("Get() failed: %v", err)
		}
		if c.Name != "Nigeria" {
			t.Fatalf("expected Nigeria, got %s", c.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, d := newTestService(t)
		d.store.EXPECT().FindByName(ctx, "atlantis").Return(nil, countrystore.ErrCountryNotFound).Once()

		_, err := svc.Get(ctx, "atlantis")
		if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
			t.Fatalf("expected CategoryResourceNotFound, got %v", err)
		}
	})

	t.Run("invalid stored record", func(t *testing.T) {
		svc, d := newTestService(t)
		d.store.EXPECT().FindByName(ctx, "legacy").
			Return(&country.Country{ID: 9, Name: "Legacy", Population: -5, CurrencyCode: strPtr("N/A")}, nil).Once()

		_, err := svc.Get(ctx, "legacy")
		var svcErr *apperrors.ServiceError
		if !errors.As(err, &svcErr) || svcErr.Category != apperrors.CategoryDataError {
			t.Fatalf("expected validation error, got %v", err)
		}
		details, ok := svcErr.Details.(map[string]string)
		if !ok {
			t.Fatalf("expected details map, got %T", svcErr.Details)
		}
		if details["population"] != "is invalid" || details["currency_code"] != "is invalid" {
			t.Fatalf("unexpected details: %v", details)
		}
	})
}

func TestCountryService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t)

	d.store.EXPECT().DeleteByName(ctx, "Ghana").Return(int64(1), nil).Once()
	d.store.EXPECT().DeleteByName(ctx, "Atlantis").Return(int64(0), nil).Once()

	if err := svc.Delete(ctx, "Ghana"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := svc.Delete(ctx, "Atlantis"); !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected CategoryResourceNotFound, got %v", err)
	}
}

func TestCountryService_Status(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t)

	ts := time.Date(2025, 10, 22, 18, 0, 0, 0, time.UTC)
	d.store.EXPECT().Stats(ctx).Return(&countrystore.Stats{Total: 250, LastRefreshedAt: &ts}, nil).Once()

	st, err := svc.Status(ctx)
	if err != nil {
		t.Fatalf("Status() failed: %v", err)
	}
	if st.TotalCountries != 250 || st.LastRefreshedAt == nil || !st.LastRefreshedAt.Equal(ts) {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestCountryService_Image(t *testing.T) {
	ctx := context.Background()

	t.Run("not rendered", func(t *testing.T) {
		svc, d := newTestService(t)
		d.renderer.EXPECT().Read().Return(nil, summary.ErrNotRendered).Once()

		_, err := svc.Image(ctx)
		if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
			t.Fatalf("expected CategoryResourceNotFound, got %v", err)
		}
	})

	t.Run("read error", func(t *testing.T) {
		svc, d := newTestService(t)
		d.renderer.EXPECT().Read().Return(nil, errors.New("permission denied")).Once()

		_, err := svc.Image(ctx)
		if !apperrors.Is(err, apperrors.CategoryGeneralError) {
			t.Fatalf("expected CategoryGeneralError, got %v", err)
		}
	})
}

func TestCountryService_InsertSample(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t)

	d.store.EXPECT().InsertOne(ctx, mock.MatchedBy(func(c *country.Country) bool {
		return c.Name == "Nigeria" && c.Capital == "Abuja" && c.Region == "Africa" &&
			c.Population == 20000000 && c.FlagURL == "https://flagcdn.com/ng.svg" &&
			c.CurrencyCode != nil && *c.CurrencyCode == "NGN"
	})).Return(nil).Once()

	if _, err := svc.InsertSample(ctx); err != nil {
		t.Fatalf("InsertSample() failed: %v", err)
	}
}

func TestCountryService_SetupAndClear(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t)

	d.store.EXPECT().DropSchema(ctx).Return(nil).Once()
	d.store.EXPECT().CreateSchema(ctx).Return(nil).Once()
	d.store.EXPECT().Truncate(ctx).Return(errors.New("locked")).Once()

	if err := svc.Setup(ctx); err != nil {
		t.Fatalf("Setup() failed: %v", err)
	}
	if err := svc.Clear(ctx); !apperrors.Is(err, apperrors.CategoryGeneralError) {
		t.Fatalf("expected CategoryGeneralError, got %v", err)
	}
}

func TestCountryService_SetupStopsOnDropFailure(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t)

	d.store.EXPECT().DropSchema(ctx).Return(errors.New("in use")).Once()

	if err := svc.Setup(ctx); err == nil {
		t.Fatal("expected error")
	}
	d.store.AssertNotCalled(t, "CreateSchema", mock.Anything)
}
