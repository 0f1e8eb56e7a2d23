package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"freight-match/internal/usecase/freight"
	"freight-match/pkg/utils"
)

type FreightHandler struct {
	service *freight.Service
}

func NewFreightHandler(service *freight.Service) *FreightHandler {
	return &FreightHandler{service: service}
}

func (h *FreightHandler) RegisterDriverRoutes(router *gin.RouterGroup) {
	jobs := router.Group("/jobs")
	{
		jobs.GET("", h.ListAvailable)
		jobs.GET("/:id", h.GetJob)
		jobs.POST("/:id/claim", h.ClaimJob)
	}
}

func (h *FreightHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	jobs := router.Group("/jobs")
	{
		jobs.POST("", h.CreateJob)
		jobs.GET("", h.ListAll)
		jobs.GET("/:id", h.GetJob)
		jobs.POST("/:id/finalize", h.FinalizeJob)
		jobs.DELETE("/:id", h.DeleteJob)
	}

	router.GET("/reports/statistics", h.GetStatistics)
}

func (h *FreightHandler) CreateJob(c *gin.Context) {
	var req freight.CreateJobRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Job created successfully", result)
}

func (h *FreightHandler) GetJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	result, err := h.service.GetJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job retrieved successfully", result)
}

func (h *FreightHandler) ListAvailable(c *gin.Context) {
	var req freight.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.service.ListAvailable(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Jobs retrieved successfully", result)
}

func (h *FreightHandler) ListAll(c *gin.Context) {
	var req freight.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.service.ListAll(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Jobs retrieved successfully", result)
}

func (h *FreightHandler) ClaimJob(c *gin.Context) {
	driverID, ok := currentUserID(c)
	if !ok {
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	result, err := h.service.ClaimJob(c.Request.Context(), driverID, jobID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job claimed successfully", result)
}

func (h *FreightHandler) FinalizeJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	result, err := h.service.FinalizeJob(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job finalized successfully", result)
}

func (h *FreightHandler) DeleteJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), jobID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Job deleted successfully", nil)
}

func (h *FreightHandler) GetStatistics(c *gin.Context) {
	result, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Statistics retrieved successfully", result)
}
