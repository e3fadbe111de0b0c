package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dquezada/revpro/internal/domain"
)

type ClientUC struct {
	Clients domain.ClientRepo
}

func (uc *ClientUC) Create(ctx context.Context, c *domain.Client) error {
	if c == nil || strings.TrimSpace(c.Name) == "" {
		return errors.New("nombre requerido")
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return uc.Clients.Save(ctx, c)
}

func (uc *ClientUC) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.Client, error) {
	return uc.Clients.FindByID(ctx, ownerID, id)
}

func (uc *ClientUC) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Client, error) {
	return uc.Clients.ListByOwner(ctx, ownerID)
}

func (uc *ClientUC) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return uc.Clients.Delete(ctx, ownerID, id)
}

type CategoryUC struct {
	Categories domain.CategoryRepo
}

func (uc *CategoryUC) Create(ctx context.Context, c *domain.Category) error {
	if c == nil || strings.TrimSpace(c.Name) == "" {
		return errors.New("nombre requerido")
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return uc.Categories.Save(ctx, c)
}

func (uc *CategoryUC) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Category, error) {
	return uc.Categories.ListByOwner(ctx, ownerID)
}

// Delete borra la categoría sin tocar productos: la relación es por valor.
func (uc *CategoryUC) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return uc.Categories.Delete(ctx, ownerID, id)
}
