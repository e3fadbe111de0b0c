package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dquezada/revpro/internal/domain"
)

// Gateway arma los enlaces wa.me del flujo de pedido por WhatsApp. El
// servidor sólo devuelve el enlace; abrirlo es responsabilidad del
// dispositivo.
type Gateway struct {
	// número del vendedor que recibe los pedidos, con código de país
	phone string
}

func NewGateway(phone string) *Gateway {
	return &Gateway{phone: digits(phone)}
}

// OrderMessage construye el texto del pedido a partir de los snapshots del
// carrito, línea por línea con el total al final.
func OrderMessage(cart *domain.Cart) string {
	var b strings.Builder
	b.WriteString("*📦 NUEVO PEDIDO RE-VENDEDOR*\n\n")
	b.WriteString("Hola, solicito los siguientes productos:\n\n")
	for i, l := range cart.Lines {
		fmt.Fprintf(&b, "%d. %s x%d - Q%.2f\n", i+1, l.Name, l.Qty, l.Total)
	}
	fmt.Fprintf(&b, "\n*TOTAL A PAGAR: Q%.2f*", cart.Total())
	b.WriteString("\n\nQuedo a la espera de confirmación.")
	return b.String()
}

// OrderLink devuelve el enlace wa.me hacia el vendedor con el pedido ya
// codificado en el texto.
func (g *Gateway) OrderLink(cart *domain.Cart) (string, error) {
	if g.phone == "" {
		return "", errors.New("número de WhatsApp no configurado (WHATSAPP_PHONE)")
	}
	if cart == nil || cart.Empty() {
		return "", domain.ErrEmptyCart
	}
	return "https://wa.me/" + g.phone + "?text=" + url.QueryEscape(OrderMessage(cart)), nil
}

// ChatLink devuelve el enlace de chat directo con un cliente del directorio.
func ChatLink(phone string) (string, error) {
	d := digits(phone)
	if d == "" {
		return "", errors.New("el cliente no tiene teléfono")
	}
	return "https://wa.me/" + d, nil
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
