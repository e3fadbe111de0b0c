package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquezada/revpro/internal/domain"
)

func testServer() *Server {
	gin.SetMode(gin.TestMode)
	return &Server{secret: []byte("clave-de-prueba")}
}

func writeCartCookie(t *testing.T, s *Server, owner uuid.UUID, cart *domain.Cart) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	s.writeCart(c, owner, cart)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func contextWithCookie(w *httptest.ResponseRecorder, ck *http.Cookie) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if ck != nil {
		c.Request.AddCookie(ck)
	}
	return c
}

func TestCartCookieRoundTrip(t *testing.T) {
	s := testServer()
	owner := uuid.New()

	cart := &domain.Cart{}
	cart.Add(domain.Product{ID: uuid.New(), Name: "Zapato Azul", Price: 100, Cost: 50}, 2)

	ck := writeCartCookie(t, s, owner, cart)
	assert.Equal(t, "cart", ck.Name)
	assert.True(t, ck.HttpOnly)

	got := s.readCart(contextWithCookie(httptest.NewRecorder(), ck), owner)
	require.Equal(t, 1, got.Count())
	assert.Equal(t, "Zapato Azul", got.Lines[0].Name)
	assert.Equal(t, 200.0, got.Total())
}

func TestCartCookieScopedToOwner(t *testing.T) {
	s := testServer()
	cart := &domain.Cart{}
	cart.Add(domain.Product{ID: uuid.New(), Name: "Camisa Roja", Price: 50, Cost: 25}, 1)

	ck := writeCartCookie(t, s, uuid.New(), cart)

	got := s.readCart(contextWithCookie(httptest.NewRecorder(), ck), uuid.New())
	assert.True(t, got.Empty())
}

func TestCartCookieTamperedSignature(t *testing.T) {
	s := testServer()
	cart := &domain.Cart{}
	cart.Add(domain.Product{ID: uuid.New(), Name: "Zapato Azul", Price: 100, Cost: 50}, 1)
	owner := uuid.New()

	ck := writeCartCookie(t, s, owner, cart)
	ck.Value = "AAAA" + ck.Value[4:]

	got := s.readCart(contextWithCookie(httptest.NewRecorder(), ck), owner)
	assert.True(t, got.Empty())
}

func TestCartCookieMissing(t *testing.T) {
	s := testServer()
	got := s.readCart(contextWithCookie(httptest.NewRecorder(), nil), uuid.New())
	require.NotNil(t, got)
	assert.True(t, got.Empty())
}
