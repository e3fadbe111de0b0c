package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/dquezada/revpro/internal/usecase"
)

const tokenTTL = 30 * 24 * time.Hour

type credentials struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := s.auth.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.respondSession(c, http.StatusCreated, u.ID, u.Email, u.Name)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		fail(c, err)
		return
	}
	s.respondSession(c, http.StatusOK, u.ID, u.Email, u.Name)
}

func (s *Server) respondSession(c *gin.Context, code int, id uuid.UUID, email, name string) {
	tok, exp, err := issueToken(s.secret, id, email, tokenTTL)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(code, gin.H{"token": tok, "exp": exp.Unix(), "user": gin.H{"id": id, "email": email, "name": name}})
}

func (s *Server) handleGoogleLogin(c *gin.Context) {
	if s.oauthCfg == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "oauth no configurado"})
		return
	}
	state := uuid.New().String()
	c.SetCookie("oauth_state", state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, s.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOnline))
}

func (s *Server) handleGoogleCallback(c *gin.Context) {
	if s.oauthCfg == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "oauth no configurado"})
		return
	}
	state := c.Query("state")
	saved, _ := c.Cookie("oauth_state")
	if state == "" || saved != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state"})
		return
	}
	tok, err := s.oauthCfg.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		log.Error().Err(err).Msg("exchange oauth")
		c.JSON(http.StatusBadRequest, gin.H{"error": "oauth"})
		return
	}
	resp, err := s.oauthCfg.Client(c.Request.Context(), tok).Get(s.userinfoURL)
	if err != nil {
		log.Error().Err(err).Msg("userinfo")
		c.JSON(http.StatusBadGateway, gin.H{"error": "userinfo"})
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Msg("userinfo")
		c.JSON(http.StatusBadGateway, gin.H{"error": "userinfo"})
		return
	}
	body, _ := io.ReadAll(resp.Body)
	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if json.Unmarshal(body, &info) != nil || info.Email == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "email"})
		return
	}
	u, err := s.auth.LoginExternal(c.Request.Context(), info.Email, info.Name)
	if err != nil {
		fail(c, err)
		return
	}
	s.respondSession(c, http.StatusOK, u.ID, u.Email, u.Name)
}
