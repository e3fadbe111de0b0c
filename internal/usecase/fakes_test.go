package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dquezada/revpro/internal/domain"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*domain.Product
}

func newFakeProductRepo(ps ...*domain.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[uuid.UUID]*domain.Product{}}
	for _, p := range ps {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Save(_ context.Context, p *domain.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok || p.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok || p.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) FindByBarcode(_ context.Context, ownerID uuid.UUID, code string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.OwnerID == ownerID && p.Barcode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += delta
	if p.Stock < 0 {
		p.Stock = 0
	}
	return nil
}

// fakeOrderRepo replica el contrato del repo real, incluido el descuento de
// stock dentro de MarkPaid.
type fakeOrderRepo struct {
	orders    map[uuid.UUID]*domain.Order
	products  *fakeProductRepo
	createErr error
}

func newFakeOrderRepo(products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*domain.Order{}, products: products}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *o
	cp.CreatedAt = time.Now()
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok || o.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.OwnerID == ownerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListInRange(_ context.Context, ownerID uuid.UUID, from, to time.Time) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.OwnerID == ownerID && !o.CreatedAt.Before(from) && o.CreatedAt.Before(to.AddDate(0, 0, 1)) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) MarkPaid(ctx context.Context, o *domain.Order) error {
	stored, ok := r.orders[o.ID]
	if !ok || stored.Status != domain.OrderStatusPendiente {
		return domain.ErrInvalidStatus
	}
	for _, it := range o.Items {
		if it.ProductID == nil {
			continue
		}
		if err := r.products.AdjustStock(ctx, *it.ProductID, -it.Qty); err != nil {
			return err
		}
	}
	stored.Status = domain.OrderStatusPagado
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, ownerID, id uuid.UUID, status domain.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok || o.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	if o.Status != domain.OrderStatusPendiente {
		return domain.ErrInvalidStatus
	}
	o.Status = status
	return nil
}

type fakeClientRepo struct {
	clients map[uuid.UUID]*domain.Client
}

func newFakeClientRepo(cs ...*domain.Client) *fakeClientRepo {
	r := &fakeClientRepo{clients: map[uuid.UUID]*domain.Client{}}
	for _, c := range cs {
		r.clients[c.ID] = c
	}
	return r
}

func (r *fakeClientRepo) Save(_ context.Context, c *domain.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok || c.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range r.clients {
		if c.OwnerID == ownerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	c, ok := r.clients[id]
	if !ok || c.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Save(_ context.Context, u *domain.User) error {
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}
