package adapthttp

import (
	"net/http"

	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID *int `json:"productId" binding:"required"`
	Quantity  *int `json:"quantity"`
}

type updateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (s *Server) handleCart(c *gin.Context) {
	writeJSON(c, http.StatusOK, toCart(s.carts.Get(c.Request.Context(), sessionID(c))))
}

func (s *Server) handleCartAdd(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	cart, err := s.carts.Add(c.Request.Context(), sessionID(c), *req.ProductID, qty)
	s.respondCart(c, cart, err)
}

func (s *Server) handleCartUpdate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		writeError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	cart, err := s.carts.UpdateQuantity(c.Request.Context(), sessionID(c), id, *req.Quantity)
	s.respondCart(c, cart, err)
}

func (s *Server) handleCartRemove(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		writeError(c, http.StatusNotFound, errProductNotFound)
		return
	}
	cart, err := s.carts.Remove(c.Request.Context(), sessionID(c), id)
	s.respondCart(c, cart, err)
}

func (s *Server) handleCartClear(c *gin.Context) {
	if err := s.carts.Clear(c.Request.Context(), sessionID(c)); err != nil {
		s.log.WithError(err).Error("clear cart")
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	writeJSON(c, http.StatusOK, toCart(domain.NewCart()))
}

func (s *Server) respondCart(c *gin.Context, cart *domain.Cart, err error) {
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.log.WithError(err).WithField("session", sessionID(c)).Error("cart operation")
		}
		writeError(c, status, err)
		return
	}
	writeJSON(c, http.StatusOK, toCart(cart))
}
