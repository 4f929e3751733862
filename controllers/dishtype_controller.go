package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
)

type DishTypeController struct {
	db *gorm.DB
}

func NewDishTypeController(db *gorm.DB) *DishTypeController {
	return &DishTypeController{db: db}
}

// GET /dishtypes
func (ctl *DishTypeController) List(c *gin.Context) {
	types := []models.DishType{}
	if err := ctl.db.Find(&types).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, types)
}

// GET /dishtypes/:id
func (ctl *DishTypeController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish type id"})
		return
	}

	var dishType models.DishType
	if err := ctl.db.First(&dishType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish type not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dishType)
}

type CreateDishTypeInput struct {
	Type string `json:"type" binding:"required"`
}

// POST /dishtypes
func (ctl *DishTypeController) Create(c *gin.Context) {
	var input CreateDishTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dishType := models.DishType{Type: input.Type}
	if err := ctl.db.Create(&dishType).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dishType)
}

type UpdateDishTypeInput struct {
	Type Optional[string] `json:"type"`
}

// PUT /dishtypes/:id
func (ctl *DishTypeController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish type id"})
		return
	}

	var dishType models.DishType
	if err := ctl.db.First(&dishType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish type not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input UpdateDishTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Type.Set {
		if !input.Type.Valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type cannot be null"})
			return
		}
		if err := ctl.db.Model(&dishType).Update("type", input.Type.Value).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "dish type updated"})
}

// DELETE /dishtypes/:id
func (ctl *DishTypeController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish type id"})
		return
	}

	var dishType models.DishType
	if err := ctl.db.First(&dishType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish type not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.db.Delete(&dishType).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dish type deleted"})
}
