package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
)

type SeasonController struct {
	db *gorm.DB
}

func NewSeasonController(db *gorm.DB) *SeasonController {
	return &SeasonController{db: db}
}

// GET /seasons
func (ctl *SeasonController) List(c *gin.Context) {
	seasons := []models.Season{}
	if err := ctl.db.Find(&seasons).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, seasons)
}

type CreateSeasonInput struct {
	NameSeason string `json:"name_season" binding:"required"`
}

// POST /seasons
func (ctl *SeasonController) Create(c *gin.Context) {
	var input CreateSeasonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	season := models.Season{Name: input.NameSeason}
	if err := ctl.db.Create(&season).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, season)
}

// DELETE /seasons/:id
func (ctl *SeasonController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season id"})
		return
	}

	var season models.Season
	if err := ctl.db.First(&season, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "season not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.db.Delete(&season).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "season deleted"})
}
