package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dquezada/revpro/internal/domain"
)

type productReq struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Barcode     string  `json:"barcode"`
	Image       string  `json:"image"`
}

func (s *Server) handleListProducts(c *gin.Context) {
	owner := ownerID(c)
	f := domain.ProductFilter{Query: c.Query("q"), Category: c.Query("category")}

	key := fmt.Sprintf("products:%s:q:%s:cat:%s", owner, f.Query, f.Category)
	if cached, ok := s.cache.Get(key); ok {
		c.JSON(http.StatusOK, cached)
		return
	}
	list, err := s.products.List(c.Request.Context(), owner, f)
	if err != nil {
		fail(c, err)
		return
	}
	resp := gin.H{"data": list, "total": len(list)}
	s.cache.Set(key, resp)
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCreateProduct(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &domain.Product{
		OwnerID:     ownerID(c),
		Name:        req.Name,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		Category:    req.Category,
		Description: req.Description,
		Barcode:     req.Barcode,
		ImageURL:    req.Image,
	}
	if err := s.products.Create(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.cache.DeleteByPrefix("products:" + p.OwnerID.String())
	c.JSON(http.StatusCreated, p)
}

func (s *Server) handleGetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	p, err := s.products.Get(c.Request.Context(), ownerID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &domain.Product{
		ID:          id,
		OwnerID:     ownerID(c),
		Name:        req.Name,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		Category:    req.Category,
		Description: req.Description,
		Barcode:     req.Barcode,
		ImageURL:    req.Image,
	}
	if err := s.products.Update(c.Request.Context(), p); err != nil {
		fail(c, err)
		return
	}
	s.cache.DeleteByPrefix("products:" + p.OwnerID.String())
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleDeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return
	}
	owner := ownerID(c)
	if err := s.products.Delete(c.Request.Context(), owner, id); err != nil {
		fail(c, err)
		return
	}
	s.cache.DeleteByPrefix("products:" + owner.String())
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleBarcodeLookup(c *gin.Context) {
	p, err := s.products.FindByBarcode(c.Request.Context(), ownerID(c), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
