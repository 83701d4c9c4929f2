package handlers

import (
	"net/http"

	"coursely/models"
	"coursely/services/cart"
	"coursely/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler manages carts. Every mutation re-derives totals so the UI
// never computes money client-side.
type CartHandler struct {
	Store   *cart.Store
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

func NewCartHandler(store *cart.Store, svc catalog.CatalogService, logger *zap.Logger) *CartHandler {
	return &CartHandler{Store: store, Catalog: svc, Logger: logger}
}

func (h *CartHandler) CreateCart(c *gin.Context) {
	crt, err := h.Store.Create(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to create cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": crt, "totals": cart.Totals(crt)})
}

func (h *CartHandler) GetCart(c *gin.Context) {
	crt, err := h.Store.Get(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found or expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": crt, "totals": cart.Totals(crt)})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.Store.Delete(c.Request.Context(), c.Param("cartID")); err != nil {
		h.Logger.Error("failed to delete cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var input struct {
		CourseID string `json:"courseId" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	crt, err := h.Store.Get(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found or expired"})
		return
	}

	// Price comes from the catalog, never from the client.
	course, err := h.Catalog.CourseByID(c.Request.Context(), input.CourseID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}

	crt = cart.Add(crt, course, input.Quantity)
	if err := h.Store.Save(c.Request.Context(), crt); err != nil {
		h.Logger.Error("failed to save cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": crt, "totals": cart.Totals(crt)})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	crt, err := h.Store.Get(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found or expired"})
		return
	}

	crt = cart.SetQuantity(crt, c.Param("courseID"), input.Quantity)
	if err := h.Store.Save(c.Request.Context(), crt); err != nil {
		h.Logger.Error("failed to save cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": crt, "totals": cart.Totals(crt)})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	crt, err := h.Store.Get(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found or expired"})
		return
	}

	crt = cart.Remove(crt, c.Param("courseID"))
	if err := h.Store.Save(c.Request.Context(), crt); err != nil {
		h.Logger.Error("failed to save cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": crt, "totals": cart.Totals(crt)})
}

func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	var input struct {
		Code    string  `json:"code" binding:"required"`
		Percent float64 `json:"percent"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	crt, err := h.Store.Get(c.Request.Context(), c.Param("cartID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found or expired"})
		return
	}

	crt = cart.ApplyDiscount(crt, models.Discount{Code: input.Code, Percent: input.Percent})
	if err := h.Store.Save(c.Request.Context(), crt); err != nil {
		h.Logger.Error("failed to save cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": crt, "totals": cart.Totals(crt)})
}
