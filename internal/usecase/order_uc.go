package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/dquezada/revpro/internal/domain"
)

type OrderUC struct {
	Orders domain.OrderRepo
}

func (uc *OrderUC) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error) {
	return uc.Orders.ListByOwner(ctx, ownerID)
}

func (uc *OrderUC) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Order, error) {
	return uc.Orders.FindByID(ctx, ownerID, id)
}

// MarkPaid lleva una orden PENDIENTE a PAGADO. El repo descuenta el stock de
// cada línea y cambia el estado en una sola transacción, así un fallo parcial
// no deja inventario y orden desincronizados.
func (uc *OrderUC) MarkPaid(ctx context.Context, ownerID, id uuid.UUID) (*domain.Order, error) {
	o, err := uc.Orders.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if o.Status != domain.OrderStatusPendiente {
		return nil, domain.ErrInvalidStatus
	}
	if err := uc.Orders.MarkPaid(ctx, o); err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatusPagado
	return o, nil
}

// Cancel lleva una orden PENDIENTE a CANCELADO. Sólo cambia el estado: el
// stock nunca se descontó para una orden pendiente.
func (uc *OrderUC) Cancel(ctx context.Context, ownerID, id uuid.UUID) (*domain.Order, error) {
	o, err := uc.Orders.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if o.Status != domain.OrderStatusPendiente {
		return nil, domain.ErrInvalidStatus
	}
	if err := uc.Orders.UpdateStatus(ctx, ownerID, id, domain.OrderStatusCancelado); err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatusCancelado
	return o, nil
}
