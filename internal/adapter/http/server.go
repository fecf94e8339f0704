package adapthttp

import (
	"net/http"

	"storefront/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DefaultSessionCookie is the cookie carrying the session id.
const DefaultSessionCookie = "sid"

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	catalog *app.CatalogService
	carts   *app.CartService
	auth    *app.AuthService
	log     *logrus.Logger

	cookieName   string
	secureCookie bool
}

// New creates a Server wired to the given application services.
func New(cs *app.CatalogService, carts *app.CartService, auth *app.AuthService, log *logrus.Logger) *Server {
	return &Server{catalog: cs, carts: carts, auth: auth, log: log, cookieName: DefaultSessionCookie}
}

// WithSessionCookie sets the session cookie name and whether it is marked Secure.
func (s *Server) WithSessionCookie(name string, secure bool) *Server {
	if name != "" {
		s.cookieName = name
	}
	s.secureCookie = secure
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), s.loggingMiddleware())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		writeJSON(c, http.StatusOK, gin.H{"ok": true})
	})

	api.GET("/products", s.handleProducts)
	api.GET("/products/:id", s.handleProduct)
	api.GET("/featured", s.handleFeatured)
	api.GET("/categories", s.handleCategories)

	session := api.Group("", s.sessionMiddleware())
	session.GET("/cart", s.handleCart)
	session.DELETE("/cart", s.handleCartClear)
	session.POST("/cart/items", s.handleCartAdd)
	session.PUT("/cart/items/:id", s.handleCartUpdate)
	session.DELETE("/cart/items/:id", s.handleCartRemove)

	session.POST("/auth/login", s.handleLogin)
	session.POST("/auth/signup", s.handleSignup)
	session.POST("/auth/logout", s.handleLogout)
	session.GET("/auth/me", s.handleMe)

	return r
}
