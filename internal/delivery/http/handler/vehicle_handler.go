package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"freight-match/internal/usecase/vehicle"
	"freight-match/pkg/utils"
)

type VehicleHandler struct {
	service *vehicle.Service
}

func NewVehicleHandler(service *vehicle.Service) *VehicleHandler {
	return &VehicleHandler{service: service}
}

func (h *VehicleHandler) RegisterDriverRoutes(router *gin.RouterGroup) {
	vehicles := router.Group("/vehicles")
	{
		vehicles.POST("", h.CreateVehicle)
		vehicles.GET("", h.ListOwn)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
	}
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req vehicle.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.CreateVehicle(c.Request.Context(), ownerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Vehicle registered successfully", result)
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	result, err := h.service.GetVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle retrieved successfully", result)
}

func (h *VehicleHandler) ListOwn(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.service.ListOwn(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved successfully", result)
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		return
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	isAdmin := c.GetString("role") == "admin"

	if err := h.service.DeleteVehicle(c.Request.Context(), vehicleID, requesterID, isAdmin); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vehicle deleted successfully", nil)
}
