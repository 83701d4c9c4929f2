package handlers

import (
	"net/http"

	"coursely/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves course browsing and detail pages.
type CatalogHandler struct {
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: svc, Logger: logger}
}

func (h *CatalogHandler) ListCourses(c *gin.Context) {
	courses, err := h.Catalog.Courses(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.Logger.Error("failed to list courses", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load courses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *CatalogHandler) GetCourse(c *gin.Context) {
	course, err := h.Catalog.CourseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	cats, err := h.Catalog.Categories(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list categories", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}
