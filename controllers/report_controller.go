package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/myloyo/bd-8/services"
)

type ReportController struct {
	svc *services.RatingService
}

func NewReportController(svc *services.RatingService) *ReportController {
	return &ReportController{svc: svc}
}

// GET /reports/dish_ratings?min_rating (default 3)
func (ctl *ReportController) DishRatings(c *gin.Context) {
	minRating := 3
	if raw := c.Query("min_rating"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_rating"})
			return
		}
		minRating = v
	}

	report, err := ctl.svc.Report(minRating)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
