package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
	"github.com/myloyo/bd-8/services"
)

type RatingController struct {
	db  *gorm.DB
	svc *services.RatingService
}

func NewRatingController(db *gorm.DB, svc *services.RatingService) *RatingController {
	return &RatingController{db: db, svc: svc}
}

type AddRatingInput struct {
	UserID  *uint  `json:"user_id" binding:"required"`
	DishID  *uint  `json:"dish_id" binding:"required"`
	Rate    *int   `json:"rate" binding:"required"`
	Comment string `json:"comment"`
	IDRate  *uint  `json:"id_rate"`
}

// POST /ratings
func (ctl *RatingController) Create(c *gin.Context) {
	var input AddRatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ctl.svc.AddRating(*input.UserID, *input.DishID, *input.Rate, input.Comment, input.IDRate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "rating added successfully"})
}

// GET /ratings
func (ctl *RatingController) List(c *gin.Context) {
	ratings := []models.DishRating{}
	if err := ctl.db.Find(&ratings).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// DELETE /ratings/:id
func (ctl *RatingController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating id"})
		return
	}

	var rating models.DishRating
	if err := ctl.db.First(&rating, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "rating not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.db.Delete(&rating).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating deleted"})
}
