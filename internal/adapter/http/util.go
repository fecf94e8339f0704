package adapthttp

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/app"
	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, err error) {
	writeJSON(c, status, gin.H{"error": err.Error()})
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrProductNotFound), errors.Is(err, app.ErrLineNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type productJSON struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func toProduct(p domain.Product) productJSON {
	return productJSON{
		ID:          p.ID,
		Name:        p.Name,
		Price:       money(p.Price),
		Image:       p.Image,
		Category:    p.Category,
		Description: p.Description,
	}
}

func toProducts(ps []domain.Product) []productJSON {
	out := make([]productJSON, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProduct(p))
	}
	return out
}

type lineJSON struct {
	Product   productJSON `json:"product"`
	Quantity  int         `json:"quantity"`
	LineTotal string      `json:"lineTotal"`
}

type summaryJSON struct {
	ItemCount int    `json:"itemCount"`
	Subtotal  string `json:"subtotal"`
	Shipping  string `json:"shipping"`
	Tax       string `json:"tax"`
	Total     string `json:"total"`
}

type cartJSON struct {
	Lines     []lineJSON  `json:"lines"`
	ItemCount int         `json:"itemCount"`
	Subtotal  string      `json:"subtotal"`
	Summary   summaryJSON `json:"summary"`
}

func toCart(cart *domain.Cart) cartJSON {
	lines := cart.Lines()
	out := cartJSON{
		Lines:     make([]lineJSON, 0, len(lines)),
		ItemCount: cart.ItemCount(),
		Subtotal:  money(cart.Subtotal()),
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, lineJSON{
			Product:   toProduct(l.Product),
			Quantity:  l.Quantity,
			LineTotal: money(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))),
		})
	}
	s := app.Summarize(cart)
	out.Summary = summaryJSON{
		ItemCount: s.ItemCount,
		Subtotal:  money(s.Subtotal),
		Shipping:  money(s.Shipping),
		Tax:       money(s.Tax),
		Total:     money(s.Total),
	}
	return out
}

type criteriaJSON struct {
	Category string `json:"category"`
	Search   string `json:"search"`
	MinPrice string `json:"minPrice,omitempty"`
	MaxPrice string `json:"maxPrice,omitempty"`
}

func toCriteria(f domain.FilterCriteria) criteriaJSON {
	out := criteriaJSON{Category: f.Category, Search: f.Search}
	if f.Price != nil {
		out.MinPrice = money(f.Price.Min)
		out.MaxPrice = money(f.Price.Max)
	}
	return out
}
