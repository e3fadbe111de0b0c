package domain

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index;not null" json:"ownerId"`
	Name        string    `gorm:"size:180;not null" json:"name"`
	Price       float64   `gorm:"type:decimal(12,2);not null" json:"price"`
	Cost        float64   `gorm:"type:decimal(12,2);default:0" json:"cost"`
	Stock       int       `gorm:"type:int;default:0" json:"stock"`
	Category    string    `gorm:"size:100;index" json:"category"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Barcode     string    `gorm:"size:64;index" json:"barcode,omitempty"`
	ImageURL    string    `gorm:"size:255" json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InStock reporta si quedan al menos qty unidades. Stock ausente vale 0.
func (p *Product) InStock(qty int) bool {
	return p.Stock >= qty
}
