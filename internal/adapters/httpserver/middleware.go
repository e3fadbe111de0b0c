package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dquezada/revpro/internal/domain"
)

const ctxOwnerKey = "ownerID"

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Str("request_id", c.GetString("requestID")).
			Msg("http")
	}
}

// requireAuth exige un Bearer token válido y deja el id del dueño en el
// contexto. El owner sale siempre del token, nunca del body.
func (s *Server) requireAuth(c *gin.Context) {
	h := c.GetHeader("Authorization")
	tok := strings.TrimPrefix(h, "Bearer ")
	if tok == "" || tok == h {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrNoSession.Error()})
		return
	}
	id, err := verifyToken(s.secret, tok)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token inválido"})
		return
	}
	c.Set(ctxOwnerKey, id)
	c.Next()
}

func ownerID(c *gin.Context) uuid.UUID {
	v, ok := c.Get(ctxOwnerKey)
	if !ok {
		return uuid.Nil
	}
	id, _ := v.(uuid.UUID)
	return id
}

// fail traduce los errores de dominio a códigos HTTP; lo demás es un 500
// genérico con el detalle sólo en el log.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrNoSession):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request fallida")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno"})
	}
}
