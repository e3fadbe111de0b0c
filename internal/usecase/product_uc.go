package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dquezada/revpro/internal/domain"
)

// CategoryAll es el valor centinela que desactiva el filtro por categoría.
const CategoryAll = "Todos"

type ProductUC struct {
	Products domain.ProductRepo
}

func (uc *ProductUC) Create(ctx context.Context, p *domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	return uc.Products.Save(ctx, p)
}

func (uc *ProductUC) Update(ctx context.Context, p *domain.Product) error {
	if p.ID == uuid.Nil {
		return errors.New("id vacío")
	}
	if err := validateProduct(p); err != nil {
		return err
	}
	existing, err := uc.Products.FindByID(ctx, p.OwnerID, p.ID)
	if err != nil {
		return err
	}
	p.CreatedAt = existing.CreatedAt
	if p.Stock < 0 {
		p.Stock = 0
	}
	return uc.Products.Save(ctx, p)
}

func (uc *ProductUC) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Product, error) {
	return uc.Products.FindByID(ctx, ownerID, id)
}

func (uc *ProductUC) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return uc.Products.Delete(ctx, ownerID, id)
}

// List trae el catálogo completo del dueño y aplica el filtro en memoria,
// igual que la pantalla de catálogo: texto por subcadena sin distinguir
// mayúsculas y categoría exacta con el centinela "Todos".
func (uc *ProductUC) List(ctx context.Context, ownerID uuid.UUID, f domain.ProductFilter) ([]domain.Product, error) {
	list, err := uc.Products.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return FilterCatalog(list, f.Query, f.Category), nil
}

// FilterCatalog filtra un catálogo ya cargado. Asume que el catálogo entero
// del dueño entra cómodo en memoria.
func FilterCatalog(list []domain.Product, query, category string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	cat := strings.TrimSpace(category)
	out := make([]domain.Product, 0, len(list))
	for _, p := range list {
		if cat != "" && cat != CategoryAll && p.Category != cat {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SearchByBarcode busca por código exacto en el catálogo ya cargado; gana la
// primera coincidencia. No encontrado no muta nada.
func SearchByBarcode(list []domain.Product, code string) (*domain.Product, bool) {
	c := strings.TrimSpace(code)
	if c == "" {
		return nil, false
	}
	for i := range list {
		if list[i].Barcode == c {
			return &list[i], true
		}
	}
	return nil, false
}

// FindByBarcode resuelve el código contra el store, para el flujo de escaneo
// sin catálogo precargado.
func (uc *ProductUC) FindByBarcode(ctx context.Context, ownerID uuid.UUID, code string) (*domain.Product, error) {
	c := strings.TrimSpace(code)
	if c == "" {
		return nil, errors.New("código vacío")
	}
	return uc.Products.FindByBarcode(ctx, ownerID, c)
}

func validateProduct(p *domain.Product) error {
	if p == nil {
		return errors.New("producto nil")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("nombre requerido")
	}
	if p.Price < 0 {
		return errors.New("precio inválido")
	}
	if p.Cost < 0 {
		return errors.New("costo inválido")
	}
	return nil
}
