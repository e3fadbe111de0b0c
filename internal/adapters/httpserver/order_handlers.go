package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dquezada/revpro/internal/usecase"
)

type saleReq struct {
	Method   string `json:"method"`
	ClientID string `json:"clientId"`
}

// handleConfirmSale convierte el carrito de la sesión en una orden
// PENDIENTE. La cookie de carrito sólo se limpia si la orden quedó
// persistida; si algo falla el carrito sobrevive para reintentar.
func (s *Server) handleConfirmSale(c *gin.Context) {
	var req saleReq
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := usecase.SaleInput{Method: req.Method}
	if req.ClientID != "" {
		cid, err := uuid.Parse(req.ClientID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "clientId inválido"})
			return
		}
		in.ClientID = &cid
	}
	owner := ownerID(c)
	cart := s.readCart(c, owner)
	o, err := s.sales.Confirm(c.Request.Context(), owner, cart, in)
	if err != nil {
		fail(c, err)
		return
	}
	s.clearCart(c)
	c.JSON(http.StatusCreated, o)
}

func (s *Server) handleListOrders(c *gin.Context) {
	list, err := s.orders.List(c.Request.Context(), ownerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list, "total": len(list)})
}

func (s *Server) handleGetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	o, err := s.orders.Get(c.Request.Context(), ownerID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) handleMarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	owner := ownerID(c)
	o, err := s.orders.MarkPaid(c.Request.Context(), owner, id)
	if err != nil {
		fail(c, err)
		return
	}
	// cobrar descuenta stock: el listado cacheado quedó viejo
	s.cache.DeleteByPrefix("products:" + owner.String())
	c.JSON(http.StatusOK, o)
}

func (s *Server) handleCancelOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	o, err := s.orders.Cancel(c.Request.Context(), ownerID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}
