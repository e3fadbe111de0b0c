package domain

import "github.com/google/uuid"

// CartLine es el snapshot de un producto al momento de agregarlo: precio y
// costo se copian en ese instante y no se releen después.
type CartLine struct {
	ProductID uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Cost      float64   `json:"cost"`
	Qty       int       `json:"quantity"`
	Total     float64   `json:"total"`
}

// Cart es el carrito activo de una sesión. Vive fuera del store remoto:
// el dispositivo lo conserva entre reinicios y sólo se vacía al confirmar
// la venta.
type Cart struct {
	Lines []CartLine `json:"items"`
}

// Add agrega una línea nueva con el snapshot del producto. Agregar el mismo
// producto dos veces produce dos líneas, no incrementa la cantidad.
func (c *Cart) Add(p Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Cost:      p.Cost,
		Qty:       qty,
		Total:     p.Price * float64(qty),
	})
}

// Remove saca la primera línea cuyo producto coincide. Si no está, no hace
// nada.
func (c *Cart) Remove(productID uuid.UUID) {
	for i, l := range c.Lines {
		if l.ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() { c.Lines = nil }

func (c *Cart) Empty() bool { return len(c.Lines) == 0 }

func (c *Cart) Count() int { return len(c.Lines) }

func (c *Cart) Total() float64 {
	t := 0.0
	for _, l := range c.Lines {
		t += l.Total
	}
	return t
}

func (c *Cart) TotalCost() float64 {
	t := 0.0
	for _, l := range c.Lines {
		t += l.Cost * float64(l.Qty)
	}
	return t
}

func (c *Cart) Profit() float64 { return c.Total() - c.TotalCost() }
