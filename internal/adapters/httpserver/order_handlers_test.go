package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dquezada/revpro/internal/cache"
	"github.com/dquezada/revpro/internal/domain"
	"github.com/dquezada/revpro/internal/usecase"
)

type stubOrderRepo struct {
	order *domain.Order
}

func (r *stubOrderRepo) Create(_ context.Context, _ *domain.Order) error { return nil }

func (r *stubOrderRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*domain.Order, error) {
	if r.order == nil || r.order.ID != id || r.order.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	cp := *r.order
	return &cp, nil
}

func (r *stubOrderRepo) ListByOwner(_ context.Context, _ uuid.UUID) ([]domain.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) ListInRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]domain.Order, error) {
	return nil, nil
}

func (r *stubOrderRepo) MarkPaid(_ context.Context, o *domain.Order) error {
	if r.order == nil || r.order.Status != domain.OrderStatusPendiente {
		return domain.ErrInvalidStatus
	}
	r.order.Status = domain.OrderStatusPagado
	return nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, ownerID, id uuid.UUID, status domain.OrderStatus) error {
	if r.order == nil || r.order.ID != id || r.order.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	if r.order.Status != domain.OrderStatusPendiente {
		return domain.ErrInvalidStatus
	}
	r.order.Status = status
	return nil
}

func TestMarkPaidInvalidatesProductCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	owner := uuid.New()
	o := &domain.Order{ID: uuid.New(), OwnerID: owner, Status: domain.OrderStatusPendiente}

	s := &Server{
		secret: []byte("clave-de-prueba"),
		orders: &usecase.OrderUC{Orders: &stubOrderRepo{order: o}},
		cache:  cache.New(time.Minute),
	}
	otherOwner := uuid.New()
	s.cache.Set("products:"+owner.String()+":q::cat:", gin.H{})
	s.cache.Set("products:"+otherOwner.String()+":q::cat:", gin.H{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/orders/"+o.ID.String()+"/pay", nil)
	c.Params = gin.Params{{Key: "id", Value: o.ID.String()}}
	c.Set(ctxOwnerKey, owner)

	s.handleMarkPaid(c)

	assert.Equal(t, http.StatusOK, w.Code)
	_, ok := s.cache.Get("products:" + owner.String() + ":q::cat:")
	assert.False(t, ok)
	// el cacheo de otros dueños no se toca
	_, ok = s.cache.Get("products:" + otherOwner.String() + ":q::cat:")
	assert.True(t, ok)
}

func TestMarkPaidFailureKeepsCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	owner := uuid.New()
	o := &domain.Order{ID: uuid.New(), OwnerID: owner, Status: domain.OrderStatusPagado}

	s := &Server{
		secret: []byte("clave-de-prueba"),
		orders: &usecase.OrderUC{Orders: &stubOrderRepo{order: o}},
		cache:  cache.New(time.Minute),
	}
	key := "products:" + owner.String() + ":q::cat:"
	s.cache.Set(key, gin.H{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/orders/"+o.ID.String()+"/pay", nil)
	c.Params = gin.Params{{Key: "id", Value: o.ID.String()}}
	c.Set(ctxOwnerKey, owner)

	s.handleMarkPaid(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	_, ok := s.cache.Get(key)
	assert.True(t, ok)
}
