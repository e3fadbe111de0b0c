package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dquezada/revpro/internal/domain"
	"github.com/dquezada/revpro/internal/usecase"
)

func cartView(cart *domain.Cart) gin.H {
	return gin.H{
		"total":     cart.Total(),
		"totalCost": cart.TotalCost(),
		"count":     cart.Count(),
	}
}

func (s *Server) handleGetCart(c *gin.Context) {
	owner := ownerID(c)
	cart := s.readCart(c, owner)
	resp := cartView(cart)
	resp["items"] = cart.Lines
	c.JSON(http.StatusOK, resp)
}

type cartAddReq struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// handleCartAdd agrega el snapshot del producto al carrito. Sin chequeo de
// stock al agregar: el inventario se resuelve recién al cobrar la orden.
func (s *Server) handleCartAdd(c *gin.Context) {
	var req cartAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pid, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	owner := ownerID(c)
	p, err := s.products.Get(c.Request.Context(), owner, pid)
	if err != nil {
		fail(c, err)
		return
	}
	cart := s.readCart(c, owner)
	cart.Add(*p, req.Quantity)
	s.writeCart(c, owner, cart)
	resp := cartView(cart)
	resp["added"] = p.Name
	c.JSON(http.StatusOK, resp)
}

type barcodeReq struct {
	Code string `json:"code" binding:"required"`
}

// handleCartAddByBarcode resuelve un código escaneado contra el catálogo y,
// si existe, lo agrega por la misma vía que cualquier alta de carrito. Si no
// existe no se muta nada.
func (s *Server) handleCartAddByBarcode(c *gin.Context) {
	var req barcodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	owner := ownerID(c)
	list, err := s.products.List(c.Request.Context(), owner, domain.ProductFilter{})
	if err != nil {
		fail(c, err)
		return
	}
	p, ok := usecase.SearchByBarcode(list, req.Code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "producto no encontrado", "code": req.Code})
		return
	}
	cart := s.readCart(c, owner)
	cart.Add(*p, 1)
	s.writeCart(c, owner, cart)
	resp := cartView(cart)
	resp["added"] = p.Name
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCartRemove(c *gin.Context) {
	pid, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	owner := ownerID(c)
	cart := s.readCart(c, owner)
	cart.Remove(pid)
	s.writeCart(c, owner, cart)
	resp := cartView(cart)
	resp["items"] = cart.Lines
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCartClear(c *gin.Context) {
	s.clearCart(c)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleCartWhatsApp devuelve el enlace wa.me con el pedido armado; el
// dispositivo decide abrirlo. El carrito no se toca: la venta se registra
// aparte cuando el usuario la confirma.
func (s *Server) handleCartWhatsApp(c *gin.Context) {
	owner := ownerID(c)
	cart := s.readCart(c, owner)
	link, err := s.wa.OrderLink(cart)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": link})
}
