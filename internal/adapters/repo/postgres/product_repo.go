package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dquezada/revpro/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProductRepo) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ? AND owner_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Product, error) {
	var list []domain.Product
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProductRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&domain.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) FindByBarcode(ctx context.Context, ownerID uuid.UUID, code string) (*domain.Product, error) {
	c := strings.TrimSpace(code)
	if c == "" {
		return nil, errors.New("código vacío")
	}
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, "owner_id = ? AND barcode = ?", ownerID, c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// AdjustStock es un ajuste relativo aplicado por el motor, no un
// read-modify-write: evita lost updates sin necesidad de versión. Piso en
// cero para que el stock nunca quede negativo.
func (r *ProductRepo) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	return adjustStock(r.db.WithContext(ctx), id, delta)
}

func adjustStock(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&domain.Product{}).Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("GREATEST(COALESCE(stock,0) + ?, 0)", delta)).Error
}
