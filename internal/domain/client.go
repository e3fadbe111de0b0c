package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultClientName se denormaliza en las órdenes sin cliente asociado.
const DefaultClientName = "Cliente Final"

type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index;not null" json:"ownerId"`
	Name      string    `gorm:"size:140;not null" json:"name"`
	Phone     string    `gorm:"size:50" json:"phone,omitempty"`
	Address   string    `gorm:"size:255" json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index;not null" json:"ownerId"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
