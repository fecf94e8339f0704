package app_test

import (
	"net/url"
	"testing"

	"storefront/internal/app"
	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

func TestCriteriaFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantCategory string
		wantSearch   string
		wantPrice    *[2]string
	}{
		{"empty", "", "all", "", nil},
		{"category and search", "category=jackets&search=wool", "jackets", "wool", nil},
		{"explicit all", "category=all", "all", "", nil},
		{"price range", "minPrice=10&maxPrice=50.5", "all", "", &[2]string{"10", "50.5"}},
		{"reversed price range", "minPrice=50&maxPrice=10", "all", "", &[2]string{"10", "50"}},
		{"only min price", "minPrice=10", "all", "", nil},
		{"unparsable price", "minPrice=cheap&maxPrice=10", "all", "", nil},
		{"exponent min price", "minPrice=1e-3000000&maxPrice=1", "all", "", nil},
		{"exponent max price", "minPrice=0&maxPrice=1e2000000000", "all", "", nil},
		{"negative price", "minPrice=-5&maxPrice=10", "all", "", nil},
		{"too many decimals", "minPrice=0.001&maxPrice=10", "all", "", nil},
		{"too many digits", "minPrice=0&maxPrice=12345678901", "all", "", nil},
		{"surrounding space", "minPrice=+5+&maxPrice=10.25", "all", "", &[2]string{"5", "10.25"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			if err != nil {
				t.Fatal(err)
			}
			c := app.CriteriaFromQuery(q)
			if c.Category != tc.wantCategory || c.Search != tc.wantSearch {
				t.Errorf("got category=%q search=%q", c.Category, c.Search)
			}
			switch {
			case tc.wantPrice == nil && c.Price != nil:
				t.Errorf("expected no price facet, got %+v", c.Price)
			case tc.wantPrice != nil && c.Price == nil:
				t.Error("expected price facet")
			case tc.wantPrice != nil:
				lo := decimal.RequireFromString(tc.wantPrice[0])
				hi := decimal.RequireFromString(tc.wantPrice[1])
				if !c.Price.Min.Equal(lo) || !c.Price.Max.Equal(hi) {
					t.Errorf("price = [%s, %s]; want [%s, %s]", c.Price.Min, c.Price.Max, lo, hi)
				}
			}
		})
	}
}

func TestWithCategory(t *testing.T) {
	q := url.Values{"search": {"tee"}, "page": {"2"}}

	set := app.WithCategory(q, "jackets")
	if set.Get("category") != "jackets" || set.Get("search") != "tee" || set.Get("page") != "2" {
		t.Errorf("unexpected query %v", set)
	}
	if q.Get("category") != "" {
		t.Error("input query must not be modified")
	}

	for _, reset := range []string{"all", ""} {
		got := app.WithCategory(set, reset)
		if _, ok := got["category"]; ok {
			t.Errorf("WithCategory(%q) kept the parameter: %v", reset, got)
		}
		if got.Get("search") != "tee" {
			t.Errorf("WithCategory(%q) dropped unrelated parameters: %v", reset, got)
		}
	}
}

func TestWithSearch(t *testing.T) {
	got := app.WithSearch(url.Values{"category": {"jeans"}}, "slim")
	if got.Get("search") != "slim" || got.Get("category") != "jeans" {
		t.Errorf("unexpected query %v", got)
	}
	got = app.WithSearch(got, "")
	if _, ok := got["search"]; ok {
		t.Errorf("empty search must delete the parameter: %v", got)
	}
}

func TestWithPriceRange(t *testing.T) {
	r := domain.NewPriceRange(decimal.NewFromInt(5), decimal.NewFromInt(75))
	got := app.WithPriceRange(url.Values{}, &r)
	if got.Get("minPrice") != "5" || got.Get("maxPrice") != "75" {
		t.Errorf("unexpected query %v", got)
	}
	got = app.WithPriceRange(got, nil)
	if len(got) != 0 {
		t.Errorf("nil range must delete both parameters: %v", got)
	}
}

func TestQueryRoundTrip(t *testing.T) {
	r := domain.NewPriceRange(decimal.RequireFromString("9.99"), decimal.NewFromInt(100))
	tests := []domain.FilterCriteria{
		{Category: "all"},
		{Category: "jackets"},
		{Category: "all", Search: "Wool Coat"},
		{Category: "t-shirts", Search: "cotton", Price: &r},
	}
	for _, c := range tests {
		got := app.CriteriaFromQuery(app.QueryFromCriteria(c))
		if got.Category != c.Category || got.Search != c.Search {
			t.Errorf("round trip of %+v gave %+v", c, got)
		}
		if (got.Price == nil) != (c.Price == nil) {
			t.Errorf("round trip of %+v changed the price facet", c)
			continue
		}
		if c.Price != nil && (!got.Price.Min.Equal(c.Price.Min) || !got.Price.Max.Equal(c.Price.Max)) {
			t.Errorf("round trip of %+v gave price %+v", c, got.Price)
		}
	}
}

func TestDefaultsAreOmitted(t *testing.T) {
	q := app.QueryFromCriteria(domain.FilterCriteria{Category: "all"})
	if enc := q.Encode(); enc != "" {
		t.Errorf("expected empty query, got %q", enc)
	}
	if len(app.ClearedQuery()) != 0 {
		t.Error("cleared query must be empty")
	}
}
