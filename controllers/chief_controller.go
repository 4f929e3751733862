package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
)

type ChiefController struct {
	db *gorm.DB
}

func NewChiefController(db *gorm.DB) *ChiefController {
	return &ChiefController{db: db}
}

// GET /chiefs
func (ctl *ChiefController) List(c *gin.Context) {
	chiefs := []models.Chief{}
	if err := ctl.db.Find(&chiefs).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, chiefs)
}

type CreateChiefInput struct {
	NameChief string `json:"name_chief" binding:"required"`
	CountryID *uint  `json:"id_country" binding:"required"`
	ExpYears  *int   `json:"exp_years" binding:"required"`
}

// POST /chiefs
func (ctl *ChiefController) Create(c *gin.Context) {
	var input CreateChiefInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chief := models.Chief{
		Name:      input.NameChief,
		CountryID: input.CountryID,
		ExpYears:  *input.ExpYears,
	}
	if err := ctl.db.Create(&chief).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id_chief": chief.ID, "name_chief": chief.Name})
}
