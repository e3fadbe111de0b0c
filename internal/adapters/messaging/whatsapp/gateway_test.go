package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquezada/revpro/internal/domain"
)

func carritoDemo() *domain.Cart {
	cart := &domain.Cart{}
	cart.Add(domain.Product{ID: uuid.New(), Name: "Zapato Azul", Price: 100, Cost: 50}, 2)
	cart.Add(domain.Product{ID: uuid.New(), Name: "Camisa Roja", Price: 50, Cost: 25}, 1)
	return cart
}

func TestOrderMessage(t *testing.T) {
	msg := OrderMessage(carritoDemo())

	assert.True(t, strings.HasPrefix(msg, "*📦 NUEVO PEDIDO RE-VENDEDOR*\n\n"))
	assert.Contains(t, msg, "1. Zapato Azul x2 - Q200.00\n")
	assert.Contains(t, msg, "2. Camisa Roja x1 - Q50.00\n")
	assert.Contains(t, msg, "*TOTAL A PAGAR: Q250.00*")
}

func TestOrderLink(t *testing.T) {
	g := NewGateway("+502 5555-1234")
	link, err := g.OrderLink(carritoDemo())
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/50255551234", u.Path)
	assert.Equal(t, OrderMessage(carritoDemo()), u.Query().Get("text"))
}

func TestOrderLinkErrores(t *testing.T) {
	_, err := NewGateway("").OrderLink(carritoDemo())
	assert.Error(t, err)

	_, err = NewGateway("50255551234").OrderLink(&domain.Cart{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestChatLink(t *testing.T) {
	link, err := ChatLink("(502) 4444-9876")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/50244449876", link)

	_, err = ChatLink("sin teléfono")
	assert.Error(t, err)
}
