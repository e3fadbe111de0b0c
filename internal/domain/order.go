package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPendiente OrderStatus = "PENDIENTE"
	OrderStatusPagado    OrderStatus = "PAGADO"
	OrderStatusCancelado OrderStatus = "CANCELADO"
)

// Terminal indica que el estado no admite más transiciones.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPagado || s == OrderStatusCancelado
}

type Order struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID    uuid.UUID   `gorm:"type:uuid;index;not null" json:"ownerId"`
	Status     OrderStatus `gorm:"type:varchar(20);index" json:"status"`
	Items      []OrderItem `json:"items"`
	Total      float64     `gorm:"type:decimal(12,2)" json:"total"`
	TotalCost  float64     `gorm:"type:decimal(12,2);default:0" json:"totalCost"`
	Profit     float64     `gorm:"type:decimal(12,2);default:0" json:"profit"`
	Method     string      `gorm:"size:30;index" json:"method"`
	ClientID   *uuid.UUID  `gorm:"type:uuid;index" json:"clientId,omitempty"`
	ClientName string      `gorm:"size:140" json:"clientName"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// OrderItem es el snapshot de una línea de carrito al momento de la venta.
// Precio y costo no se vuelven a leer del producto vivo.
type OrderItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index" json:"-"`
	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"productId,omitempty"`
	Name      string     `gorm:"size:180" json:"name"`
	Price     float64    `gorm:"type:decimal(12,2)" json:"price"`
	Cost      float64    `gorm:"type:decimal(12,2);default:0" json:"cost"`
	Qty       int        `gorm:"not null" json:"quantity"`
	Total     float64    `gorm:"type:decimal(12,2)" json:"total"`
}
