// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCredentials = errors.New("invalid email or password")
	errInvalidSignup      = errors.New("a valid email and a password of at least 6 characters are required")
	errNotSignedIn        = errors.New("not signed in")
)

type credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	res, err := s.auth.Login(c.Request.Context(), sessionID(c), req.Email, req.Password)
	if err != nil {
		s.log.WithError(err).Error("login")
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	if !res.OK {
		writeError(c, http.StatusUnauthorized, errInvalidCredentials)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"user": res.User})
}

func (s *Server) handleSignup(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	res, err := s.auth.Signup(c.Request.Context(), sessionID(c), req.Email, req.Password, req.Name)
	if err != nil {
		s.log.WithError(err).Error("signup")
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	if !res.OK {
		writeError(c, http.StatusBadRequest, errInvalidSignup)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"user": res.User})
}

func (s *Server) handleLogout(c *gin.Context) {
	if err := s.auth.Logout(c.Request.Context(), sessionID(c)); err != nil {
		s.log.WithError(err).Error("logout")
		writeError(c, http.StatusInternalServerError, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleMe(c *gin.Context) {
	u := s.auth.Current(c.Request.Context(), sessionID(c))
	if u == nil {
		writeError(c, http.StatusUnauthorized, errNotSignedIn)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"user": u})
}
