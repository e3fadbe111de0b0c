package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dquezada/revpro/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	for i := range o.Items {
		if o.Items[i].ID == uuid.Nil {
			o.Items[i].ID = uuid.New()
		}
		o.Items[i].OrderID = o.ID
	}
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepo) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error) {
	var list []domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("owner_id = ?", ownerID).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OrderRepo) ListInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.Order, error) {
	var list []domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("owner_id = ? AND created_at >= ? AND created_at < ?", ownerID, from, to.AddDate(0, 0, 1)).
		Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// MarkPaid descuenta el stock de cada línea y actualiza el estado en una
// única transacción: o se aplica todo o no se aplica nada.
func (r *OrderRepo) MarkPaid(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range o.Items {
			if it.ProductID == nil || *it.ProductID == uuid.Nil {
				continue
			}
			if err := adjustStock(tx, *it.ProductID, -it.Qty); err != nil {
				return err
			}
		}
		res := tx.Model(&domain.Order{}).
			Where("id = ? AND owner_id = ? AND status = ?", o.ID, o.OwnerID, domain.OrderStatusPendiente).
			Update("status", domain.OrderStatusPagado)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInvalidStatus
		}
		return nil
	})
}

// UpdateStatus sólo transiciona órdenes PENDIENTE. El guard va en el WHERE
// para que una orden pagada en paralelo no termine cancelada.
func (r *OrderRepo) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status domain.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ? AND owner_id = ? AND status = ?", id, ownerID, domain.OrderStatusPendiente).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := r.db.WithContext(ctx).Model(&domain.Order{}).
			Where("id = ? AND owner_id = ?", id, ownerID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidStatus
	}
	return nil
}
