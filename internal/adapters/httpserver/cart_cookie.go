package httpserver

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dquezada/revpro/internal/domain"
)

// El carrito vive en una cookie firmada que guarda el dispositivo: sobrevive
// reinicios, no se sincroniza entre dispositivos y no pisa el store remoto.
// La firma ata el contenido a la sesión dueña.

const cartCookie = "cart"

type cartEnvelope struct {
	OwnerID uuid.UUID   `json:"ownerId"`
	Cart    domain.Cart `json:"cart"`
}

func (s *Server) readCart(c *gin.Context, owner uuid.UUID) *domain.Cart {
	raw, err := c.Cookie(cartCookie)
	if err != nil {
		return &domain.Cart{}
	}
	payload, ok := verifySigned(s.secret, raw)
	if !ok {
		return &domain.Cart{}
	}
	var env cartEnvelope
	if json.Unmarshal(payload, &env) != nil || env.OwnerID != owner {
		return &domain.Cart{}
	}
	return &env.Cart
}

func (s *Server) writeCart(c *gin.Context, owner uuid.UUID, cart *domain.Cart) {
	b, _ := json.Marshal(cartEnvelope{OwnerID: owner, Cart: *cart})
	h := hmac.New(sha256.New, s.secret)
	h.Write(b)
	val := base64.RawURLEncoding.EncodeToString(h.Sum(nil)) + "." + base64.RawURLEncoding.EncodeToString(b)
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cartCookie,
		Value:    val,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 30,
		HttpOnly: true,
	})
}

func (s *Server) clearCart(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{Name: cartCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
}

func verifySigned(secret []byte, raw string) ([]byte, bool) {
	i := -1
	for j := 0; j < len(raw); j++ {
		if raw[j] == '.' {
			i = j
			break
		}
	}
	if i < 0 {
		return nil, false
	}
	sig, err := base64.RawURLEncoding.DecodeString(raw[:i])
	if err != nil {
		return nil, false
	}
	payload, err := base64.RawURLEncoding.DecodeString(raw[i+1:])
	if err != nil {
		return nil, false
	}
	h := hmac.New(sha256.New, secret)
	h.Write(payload)
	if !hmac.Equal(sig, h.Sum(nil)) {
		return nil, false
	}
	return payload, true
}
