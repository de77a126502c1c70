package dispatch

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"airops/internal/feasibility"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{
		service: s,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/feasibility/analyze", h.AnalyzeHandler)
	router.GET("/v1/feasibility/heatmap", h.HeatmapHandler)
	router.POST("/v1/ftl/calculate", h.CalculateFTLHandler)
	router.POST("/v1/crew/validate", h.ValidateCrewHandler)
}

// AnalyzeHandler godoc
// @Summary      Analyze schedule feasibility
// @Description  Run all conflict detectors over the current schedule snapshot
// @Tags         feasibility
// @Accept       json
// @Produce      json
// @Param        request body AnalyzeRequest true "Evaluation scope"
// @Success      200 {object} AnalyzeResponse
// @Failure      400 {object} map[string]string
// @Router       /v1/feasibility/analyze [post]
func (h *Handler) AnalyzeHandler(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  feasibility.ErrorCodeValidation,
		})
		return
	}

	response, err := h.service.AnalyzeSchedule(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) HeatmapHandler(c *gin.Context) {
	response, err := h.service.Heatmap(c.Request.Context(), c.Query("day"))
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) CalculateFTLHandler(c *gin.Context) {
	var req FtlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  feasibility.ErrorCodeValidation,
		})
		return
	}

	result, err := h.service.EvaluateFTL(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) ValidateCrewHandler(c *gin.Context) {
	var req ValidateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON body",
			"code":  feasibility.ErrorCodeValidation,
		})
		return
	}

	verdict, err := h.service.ValidateCrew(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, verdict)
}

func sendError(c *gin.Context, err error) {
	var appErr *feasibility.AppError

	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    feasibility.ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
