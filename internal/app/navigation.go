package app

import (
	"net/url"
	"regexp"
	"strings"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

// Query parameter names carrying the shareable filter state.
const (
	ParamCategory = "category"
	ParamSearch   = "search"
	ParamMinPrice = "minPrice"
	ParamMaxPrice = "maxPrice"
)

// priceParam accepts plain non-negative amounts with at most two decimals.
var priceParam = regexp.MustCompile(`^\d{1,9}(\.\d{1,2})?$`)

// CriteriaFromQuery reads filter criteria from navigation query parameters.
// Missing parameters mean "no filter" for their facet. The price facet is
// only applied when both bounds are plain amounts.
func CriteriaFromQuery(q url.Values) domain.FilterCriteria {
	c := domain.FilterCriteria{
		Category: q.Get(ParamCategory),
		Search:   q.Get(ParamSearch),
	}
	if c.Category == "" {
		c.Category = domain.AllCategories
	}

	lo, okLo := parsePrice(q.Get(ParamMinPrice))
	hi, okHi := parsePrice(q.Get(ParamMaxPrice))
	if okLo && okHi {
		r := domain.NewPriceRange(lo, hi)
		c.Price = &r
	}
	return c
}

func parsePrice(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if !priceParam.MatchString(s) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// QueryFromCriteria encodes c as navigation query parameters, omitting
// facets at their default.
func QueryFromCriteria(c domain.FilterCriteria) url.Values {
	q := url.Values{}
	q = WithCategory(q, c.Category)
	q = WithSearch(q, c.Search)
	return WithPriceRange(q, c.Price)
}

// ClearedQuery returns the navigation state with every filter reset.
func ClearedQuery() url.Values {
	return url.Values{}
}

// WithCategory returns a copy of q with the category parameter set, or
// removed when category is empty or "all".
func WithCategory(q url.Values, category string) url.Values {
	out := cloneValues(q)
	if category == "" || category == domain.AllCategories {
		out.Del(ParamCategory)
		return out
	}
	out.Set(ParamCategory, category)
	return out
}

// WithSearch returns a copy of q with the search parameter set, or removed
// when search is empty.
func WithSearch(q url.Values, search string) url.Values {
	out := cloneValues(q)
	if search == "" {
		out.Del(ParamSearch)
		return out
	}
	out.Set(ParamSearch, search)
	return out
}

// WithPriceRange returns a copy of q with both price parameters set, or
// removed when r is nil.
func WithPriceRange(q url.Values, r *domain.PriceRange) url.Values {
	out := cloneValues(q)
	if r == nil {
		out.Del(ParamMinPrice)
		out.Del(ParamMaxPrice)
		return out
	}
	out.Set(ParamMinPrice, r.Min.String())
	out.Set(ParamMaxPrice, r.Max.String())
	return out
}

func cloneValues(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	return out
}
