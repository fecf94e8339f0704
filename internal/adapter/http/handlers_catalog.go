package adapthttp

import (
	"errors"
	"net/http"

	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

var errProductNotFound = errors.New("product not found")

func (s *Server) handleProducts(c *gin.Context) {
	listing := s.catalog.Browse(c.Request.URL.Query())
	writeJSON(c, http.StatusOK, gin.H{
		"items":    toProducts(listing.Items),
		"count":    len(listing.Items),
		"criteria": toCriteria(listing.Criteria),
		"query":    listing.Query.Encode(),
	})
}

func (s *Server) handleProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		writeError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	p, related, found := s.catalog.Product(id, intQuery(c, "related", domain.DefaultRelatedLimit))
	if !found {
		writeError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"product": toProduct(p),
		"related": toProducts(related),
	})
}

func (s *Server) handleFeatured(c *gin.Context) {
	items := s.catalog.Featured(intQuery(c, "limit", domain.DefaultFeaturedLimit))
	writeJSON(c, http.StatusOK, gin.H{"items": toProducts(items)})
}

func (s *Server) handleCategories(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"items": s.catalog.Categories()})
}
