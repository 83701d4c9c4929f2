package handlers

import (
	"errors"
	"net/http"
	"time"

	"coursely/backend"
	"coursely/middleware"
	"coursely/models"
	"coursely/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking modal flow over HTTP. One session per
// modal instance; every response carries the full session so the UI can
// re-render from it.
type BookingHandler struct {
	Sessions booking.SessionService
	Logger   *zap.Logger
}

func NewBookingHandler(sessions booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Sessions: sessions, Logger: logger}
}

// sessionView decorates the stored session with the derived state the UI
// renders: grid, slot options and the availability pre-check.
func sessionView(s *models.BookingSession) gin.H {
	grid := booking.BuildMonthGrid(s.Selection.VisibleYear, time.Month(s.Selection.VisibleMonth), time.Now())
	return gin.H{
		"session":     s,
		"calendar":    grid,
		"slotOptions": booking.SlotOptions(s),
		"available":   booking.IsCurrentSelectionAvailable(s),
	}
}

func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		CourseID string `json:"courseId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	userID := c.GetString("userID")
	session, err := h.Sessions.InitiateSession(c.Request.Context(), input.CourseID, userID)
	if err != nil {
		h.renderError(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Sessions.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

func (h *BookingHandler) SelectDuration(c *gin.Context) {
	var input struct {
		Duration models.DurationKind `json:"duration" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Duration != models.DurationHalfDay && input.Duration != models.DurationFullDay {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be half-day or full-day"})
		return
	}

	session, err := h.Sessions.SelectDuration(c.Request.Context(), c.Param("sessionID"), input.Duration)
	if err != nil {
		h.renderError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

func (h *BookingHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		h.renderError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

func (h *BookingHandler) ChangeMonth(c *gin.Context) {
	var input struct {
		Year  int `json:"year" binding:"required"`
		Month int `json:"month" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Month < 1 || input.Month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	session, err := h.Sessions.ChangeMonth(c.Request.Context(), c.Param("sessionID"), input.Year, time.Month(input.Month))
	if err != nil {
		h.renderError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

func (h *BookingHandler) SelectSlot(c *gin.Context) {
	var input struct {
		Label string `json:"label" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.SelectSlot(c.Request.Context(), c.Param("sessionID"), input.Label)
	if err != nil {
		h.renderError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

func (h *BookingHandler) SubmitDetails(c *gin.Context) {
	var input models.ReservationDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token := middleware.AuthToken(c)
	session, err := h.Sessions.SubmitDetails(c.Request.Context(), c.Param("sessionID"), token, input)
	if err != nil {
		h.renderError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

func (h *BookingHandler) Pay(c *gin.Context) {
	var input models.CardDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.Pay(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.renderError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

func (h *BookingHandler) Retry(c *gin.Context) {
	session, err := h.Sessions.Retry(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, session, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session))
}

func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Sessions.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// renderError maps flow errors to HTTP responses. Recoverable failures still
// return the session so the UI can show the inline message and let the user
// retry.
func (h *BookingHandler) renderError(c *gin.Context, session *models.BookingSession, err error) {
	var valErr *booking.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation details", "fields": valErr.Fields})
		return
	}

	var gwErr *booking.GatewayError
	if errors.As(err, &gwErr) {
		status := http.StatusPaymentRequired
		if !gwErr.Recoverable {
			status = http.StatusBadGateway
		}
		resp := gin.H{"error": gwErr.Message}
		if session != nil {
			resp["session"] = session
		}
		c.JSON(status, resp)
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		resp := gin.H{"error": apiErr.Message}
		if session != nil {
			resp["session"] = session
		}
		c.JSON(apiErr.Status, resp)
		return
	}

	var flowErr *booking.Error
	if errors.As(err, &flowErr) {
		c.JSON(http.StatusConflict, gin.H{"error": flowErr.Message, "code": flowErr.Code})
		return
	}

	h.Logger.Error("booking flow failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
