package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dquezada/revpro/internal/domain"
)

type ClientRepo struct{ db *gorm.DB }

func NewClientRepo(db *gorm.DB) *ClientRepo { return &ClientRepo{db: db} }

func (r *ClientRepo) Save(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientRepo) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Client, error) {
	var c domain.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Client, error) {
	var list []domain.Client
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ClientRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&domain.Client{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
