package country

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T { return &v }

func withGDP(name, region, code string, gdp int64) *Country {
	c := New(name, "", region, 1, "", ptr(code))
	rate := decimal.NewFromInt(1)
	c.ExchangeRate = &rate
	c.EstimatedGDP = ptr(gdp)
	return c
}

func withoutGDP(name, region string) *Country {
	return New(name, "", region, 1, "", nil)
}

func names(cs []*Country) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func equalNames(t *testing.T, got []*Country, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("expected %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, g)
		}
	}
}

func TestEstimateGDP(t *testing.T) {
	scale := decimal.NewFromInt(1500)

	gdp, ok := EstimateGDP(206139589, scale, decimal.RequireFromString("1600.23"))
	if !ok {
		t.Fatal("expected estimate")
	}
	// 206139589 * 1500 / 1600.23 = 193228088.15
	if gdp != 193228088 {
		t.Fatalf("expected 193228088, got %d", gdp)
	}

	if _, ok := EstimateGDP(100, scale, decimal.Zero); ok {
		t.Fatal("zero rate must not produce an estimate")
	}
	if _, ok := EstimateGDP(100, scale, decimal.NewFromInt(-1)); ok {
		t.Fatal("negative rate must not produce an estimate")
	}
}

func TestRandomScaleWithinBounds(t *testing.T) {
	lo, hi := decimal.NewFromInt(minScale), decimal.NewFromInt(maxScale)
	for i := 0; i < 1000; i++ {
		s := RandomScale()
		if s.LessThan(lo) || !s.LessThan(hi) {
			t.Fatalf("scale %s outside [1000, 2000)", s)
		}
	}
}

func TestApplyRate(t *testing.T) {
	rates := map[string]decimal.Decimal{
		"NGN": decimal.RequireFromString("1600"),
		"ZZZ": decimal.Zero,
	}
	scale := decimal.NewFromInt(1000)

	covered := New("Nigeria", "Abuja", "Africa", 3200, "", ptr("NGN"))
	ApplyRate(covered, rates, scale)
	if !covered.HasRate() {
		t.Fatal("expected rate and gdp to be set")
	}
	if *covered.EstimatedGDP != 2000 {
		t.Fatalf("expected gdp 2000, got %d", *covered.EstimatedGDP)
	}
	if !covered.ExchangeRate.Equal(decimal.NewFromInt(1600)) {
		t.Fatalf("expected rate 1600, got %s", covered.ExchangeRate)
	}

	for _, c := range []*Country{
		New("Unknown", "", "", 10, "", ptr("XXX")),
		New("Zero", "", "", 10, "", ptr("ZZZ")),
		New("None", "", "", 10, "", nil),
	} {
		ApplyRate(c, rates, scale)
		if c.ExchangeRate != nil || c.EstimatedGDP != nil {
			t.Fatalf("%s: expected rate and gdp to be nil together", c.Name)
		}
	}
}

func TestFilter_RegionAndCurrencyCaseInsensitive(t *testing.T) {
	all := []*Country{
		withGDP("Nigeria", "Africa", "NGN", 10),
		withGDP("Ghana", "africa", "GHS", 20),
		withGDP("France", "Europe", "EUR", 30),
		withoutGDP("Antarctica", "Polar"),
	}

	equalNames(t, Filter{Region: "AFRICA"}.Apply(all), "Nigeria", "Ghana")
	equalNames(t, Filter{Currency: "ngn"}.Apply(all), "Nigeria")
	equalNames(t, Filter{Region: "africa", Currency: "EUR"}.Apply(all))
	equalNames(t, Filter{}.Apply(all), "Nigeria", "Ghana", "France", "Antarctica")
}

func TestFilter_SortNullsLast(t *testing.T) {
	all := []*Country{
		withoutGDP("A", ""),
		withGDP("B", "", "AAA", 5),
		withGDP("C", "", "AAA", 50),
		withoutGDP("D", ""),
		withGDP("E", "", "AAA", 20),
	}

	equalNames(t, Filter{Sort: SortGDPDesc}.Apply(all), "C", "E", "B", "A", "D")
	equalNames(t, Filter{Sort: SortGDPAsc}.Apply(all), "B", "E", "C", "A", "D")
	equalNames(t, Filter{Sort: ParseSortOrder("population")}.Apply(all), "A", "B", "C", "D", "E")

	// input order untouched
	equalNames(t, all, "A", "B", "C", "D", "E")
}

func TestValidate(t *testing.T) {
	ok := New("Nigeria", "Abuja", "Africa", 1, "", ptr("NGN"))
	if d := Validate(ok); d != nil {
		t.Fatalf("expected valid record, got %v", d)
	}

	if d := Validate(New("Nowhere", "", "", 1, "", nil)); d != nil {
		t.Fatalf("nil currency must be valid, got %v", d)
	}

	// restcountries lists uninhabited territories with population 0
	if d := Validate(New("Bouvet Island", "", "Antarctic", 0, "", ptr("NOK"))); d != nil {
		t.Fatalf("zero population must be valid, got %v", d)
	}

	bad := New("", "", "", -1, "", ptr("N/A"))
	d := Validate(bad)
	if d["name"] != "is required" {
		t.Fatalf("expected name is required, got %q", d["name"])
	}
	if d["population"] != "is invalid" {
		t.Fatalf("expected population is invalid, got %q", d["population"])
	}
	if d["currency_code"] != "is invalid" {
		t.Fatalf("expected currency_code is invalid, got %q", d["currency_code"])
	}
}

func TestToResponse(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	c := withGDP("Nigeria", "Africa", "NGN", 42)
	c.ID = 7
	c.LastRefreshedAt = now

	r := ToResponse(c)
	if r.ID != 7 || r.Name != "Nigeria" || *r.EstimatedGDP != 42 {
		t.Fatalf("unexpected response %+v", r)
	}
	if r.ExchangeRate == nil || *r.ExchangeRate != 1 {
		t.Fatalf("expected exchange rate 1, got %v", r.ExchangeRate)
	}

	empty := ToResponse(withoutGDP("X", ""))
	if empty.ExchangeRate != nil || empty.EstimatedGDP != nil {
		t.Fatal("expected nil exchange data")
	}

	if got := ToResponses(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}
