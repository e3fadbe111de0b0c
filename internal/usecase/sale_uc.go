package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dquezada/revpro/internal/domain"
)

type SaleUC struct {
	Orders  domain.OrderRepo
	Clients domain.ClientRepo
}

type SaleInput struct {
	Method   string
	ClientID *uuid.UUID
}

// Confirm convierte el carrito en una orden PENDIENTE. Los totales salen de
// los snapshots del carrito, nunca del producto vivo. El stock no se toca
// acá: se descuenta una única vez al marcar la orden como pagada.
func (uc *SaleUC) Confirm(ctx context.Context, ownerID uuid.UUID, cart *domain.Cart, in SaleInput) (*domain.Order, error) {
	if ownerID == uuid.Nil {
		return nil, domain.ErrNoSession
	}
	if cart == nil || cart.Empty() {
		return nil, domain.ErrEmptyCart
	}
	method := in.Method
	if method == "" {
		method = "EFECTIVO"
	}

	o := &domain.Order{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Status:     domain.OrderStatusPendiente,
		Total:      cart.Total(),
		TotalCost:  cart.TotalCost(),
		Method:     method,
		ClientName: domain.DefaultClientName,
	}
	o.Profit = o.Total - o.TotalCost

	if in.ClientID != nil && *in.ClientID != uuid.Nil {
		c, err := uc.Clients.FindByID(ctx, ownerID, *in.ClientID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, errors.New("cliente no encontrado")
			}
			return nil, err
		}
		o.ClientID = &c.ID
		o.ClientName = c.Name
	}

	for _, l := range cart.Lines {
		pid := l.ProductID
		item := domain.OrderItem{
			ID:    uuid.New(),
			Name:  l.Name,
			Price: l.Price,
			Cost:  l.Cost,
			Qty:   l.Qty,
			Total: l.Total,
		}
		if pid != uuid.Nil {
			id := pid
			item.ProductID = &id
		}
		o.Items = append(o.Items, item)
	}

	if err := uc.Orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
