package handlers

import (
	"errors"
	"net/http"

	"coursely/backend"
	"coursely/middleware"
	"coursely/models"
	"coursely/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler backs the management dashboard's CRUD forms.
type AdminHandler struct {
	Admin  admin.AdminService
	Logger *zap.Logger
}

func NewAdminHandler(svc admin.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Admin: svc, Logger: logger}
}

func (h *AdminHandler) fail(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	h.Logger.Warn("admin request failed", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// --- Users ---

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Admin.ListUsers(c.Request.Context(), middleware.AuthToken(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	user, err := h.Admin.GetUser(c.Request.Context(), middleware.AuthToken(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	user.ID = c.Param("id")
	updated, err := h.Admin.UpdateUser(c.Request.Context(), middleware.AuthToken(c), user)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": updated})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.Admin.DeleteUser(c.Request.Context(), middleware.AuthToken(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Courses ---

func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Admin.CreateCourse(c.Request.Context(), middleware.AuthToken(c), course)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"course": created})
}

func (h *AdminHandler) UpdateCourse(c *gin.Context) {
	var course models.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	course.ID = c.Param("id")
	updated, err := h.Admin.UpdateCourse(c.Request.Context(), middleware.AuthToken(c), course)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": updated})
}

func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	if err := h.Admin.DeleteCourse(c.Request.Context(), middleware.AuthToken(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Categories ---

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Admin.CreateCategory(c.Request.Context(), middleware.AuthToken(c), cat)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": created})
}

func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	cat.ID = c.Param("id")
	updated, err := h.Admin.UpdateCategory(c.Request.Context(), middleware.AuthToken(c), cat)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": updated})
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if err := h.Admin.DeleteCategory(c.Request.Context(), middleware.AuthToken(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Content pages ---

func (h *AdminHandler) ListContent(c *gin.Context) {
	pages, err := h.Admin.ListContent(c.Request.Context(), middleware.AuthToken(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *AdminHandler) SaveContent(c *gin.Context) {
	var page models.ContentPage
	if err := c.ShouldBindJSON(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	page.Slug = c.Param("slug")
	saved, err := h.Admin.SaveContent(c.Request.Context(), middleware.AuthToken(c), page)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": saved})
}

func (h *AdminHandler) DeleteContent(c *gin.Context) {
	if err := h.Admin.DeleteContent(c.Request.Context(), middleware.AuthToken(c), c.Param("slug")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Appointments ---

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	appts, err := h.Admin.ListAppointments(c.Request.Context(), middleware.AuthToken(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (h *AdminHandler) CreateAppointment(c *gin.Context) {
	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Admin.CreateAppointment(c.Request.Context(), middleware.AuthToken(c), appt)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"appointment": created})
}

func (h *AdminHandler) UpdateAppointment(c *gin.Context) {
	var appt models.Appointment
	if err := c.ShouldBindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	appt.ID = c.Param("id")
	updated, err := h.Admin.UpdateAppointment(c.Request.Context(), middleware.AuthToken(c), appt)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": updated})
}

func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	if err := h.Admin.DeleteAppointment(c.Request.Context(), middleware.AuthToken(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
