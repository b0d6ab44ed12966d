package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type ReportController struct {
	service *services.HotelService
}

func NewReportController(service *services.HotelService) *ReportController {
	return &ReportController{service: service}
}

// GetOccupancy handles GET /api/reports/occupancy
func (rc *ReportController) GetOccupancy(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.service.GetOccupancyReport())
}

// GetRevenue handles GET /api/reports/revenue
func (rc *ReportController) GetRevenue(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"total_revenue": rc.service.CalculateTotalRevenue()})
}
