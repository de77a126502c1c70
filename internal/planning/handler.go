package planning

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	manager *Manager
}

func NewHandler(m *Manager) *Handler {
	return &Handler{
		manager: m,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/planning/state", h.StateHandler)
	router.POST("/v1/planning/lock", h.LockHandler)
	router.POST("/v1/planning/validate", h.ValidateHandler)
	router.POST("/v1/planning/unlock", h.UnlockHandler)
}

type dayRequest struct {
	Day string `json:"day" binding:"required"`
}

func (h *Handler) StateHandler(c *gin.Context) {
	day := c.Query("day")
	if day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "state": h.manager.StateFor(day)})
}

func (h *Handler) LockHandler(c *gin.Context) {
	var req dayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if err := h.manager.Lock(req.Day); err != nil {
		sendTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": req.Day, "state": StateLocked})
}

func (h *Handler) ValidateHandler(c *gin.Context) {
	var req dayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if err := h.manager.Validate(c.Request.Context(), req.Day); err != nil {
		sendTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": req.Day, "state": StateValidated})
}

func (h *Handler) UnlockHandler(c *gin.Context) {
	var req dayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	h.manager.Unlock(req.Day)
	c.JSON(http.StatusOK, gin.H{"day": req.Day, "state": StateEditable})
}

func sendTransitionError(c *gin.Context, err error) {
	var transition *TransitionError
	if errors.As(err, &transition) {
		c.JSON(http.StatusConflict, gin.H{"error": transition.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
