package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
)

type CountryController struct {
	db *gorm.DB
}

func NewCountryController(db *gorm.DB) *CountryController {
	return &CountryController{db: db}
}

// GET /countries
func (ctl *CountryController) List(c *gin.Context) {
	countries := []models.Country{}
	if err := ctl.db.Find(&countries).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, countries)
}

// GET /countries/:id
func (ctl *CountryController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid country id"})
		return
	}

	var country models.Country
	if err := ctl.db.First(&country, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "country not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, country)
}

type CreateCountryInput struct {
	NameCountry string `json:"name_country" binding:"required"`
}

// POST /countries
func (ctl *CountryController) Create(c *gin.Context) {
	var input CreateCountryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	country := models.Country{Name: input.NameCountry}
	if err := ctl.db.Create(&country).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, country)
}

// DELETE /countries/:id — rows referencing the country keep their id.
func (ctl *CountryController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid country id"})
		return
	}

	var country models.Country
	if err := ctl.db.First(&country, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "country not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.db.Delete(&country).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "country deleted"})
}
