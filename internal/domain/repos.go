package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("no encontrado")
	ErrEmptyCart     = errors.New("carrito vacío")
	ErrInvalidStatus = errors.New("estado inválido")
	ErrNoSession     = errors.New("sesión requerida")
)

type ProductFilter struct {
	Query    string
	Category string
}

type ProductRepo interface {
	Save(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Product, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Product, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	FindByBarcode(ctx context.Context, ownerID uuid.UUID, code string) (*Product, error)
	// AdjustStock aplica un delta relativo (positivo o negativo) sobre el
	// stock de un producto, con piso en cero.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
}

type OrderRepo interface {
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Order, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Order, error)
	ListInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]Order, error)
	// MarkPaid descuenta el stock de cada línea y cambia el estado a PAGADO
	// en una única transacción.
	MarkPaid(ctx context.Context, o *Order) error
	// UpdateStatus sólo transiciona órdenes PENDIENTE; sobre una orden
	// terminal devuelve ErrInvalidStatus.
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status OrderStatus) error
}

type ClientRepo interface {
	Save(ctx context.Context, c *Client) error
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Client, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Client, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type CategoryRepo interface {
	Save(ctx context.Context, c *Category) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Category, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type UserRepo interface {
	Save(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}
