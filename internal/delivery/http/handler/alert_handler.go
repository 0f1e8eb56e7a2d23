package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"freight-match/internal/usecase/alert"
	"freight-match/pkg/utils"
)

type AlertHandler struct {
	service *alert.Service
}

func NewAlertHandler(service *alert.Service) *AlertHandler {
	return &AlertHandler{service: service}
}

func (h *AlertHandler) RegisterProfileRoutes(router *gin.RouterGroup) {
	router.GET("/alerts", h.ListOwn)
}

func (h *AlertHandler) ListOwn(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.service.ListOwn(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alerts retrieved successfully", result)
}
