package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
)

type RecipeController struct {
	db *gorm.DB
}

func NewRecipeController(db *gorm.DB) *RecipeController {
	return &RecipeController{db: db}
}

// GET /recipes
func (ctl *RecipeController) List(c *gin.Context) {
	recipes := []models.Recipe{}
	if err := ctl.db.Find(&recipes).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GET /recipes/:dish/:product
func (ctl *RecipeController) Get(c *gin.Context) {
	dishID, productID, ok := recipeKey(c)
	if !ok {
		return
	}

	var recipe models.Recipe
	err := ctl.db.Where("id_dish = ? AND id_product = ?", dishID, productID).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

type CreateRecipeInput struct {
	DishID    *uint `json:"id_dish" binding:"required"`
	ProductID *uint `json:"id_product" binding:"required"`
	Gramms    *int  `json:"gramms" binding:"required"`
}

// POST /recipes
func (ctl *RecipeController) Create(c *gin.Context) {
	var input CreateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe := models.Recipe{
		DishID:    *input.DishID,
		ProductID: *input.ProductID,
		Gramms:    *input.Gramms,
	}
	if err := ctl.db.Create(&recipe).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

type UpdateRecipeInput struct {
	Gramms Optional[int] `json:"gramms"`
}

// PUT /recipes/:dish/:product
func (ctl *RecipeController) Update(c *gin.Context) {
	dishID, productID, ok := recipeKey(c)
	if !ok {
		return
	}

	var recipe models.Recipe
	err := ctl.db.Where("id_dish = ? AND id_product = ?", dishID, productID).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input UpdateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Gramms.Set {
		if !input.Gramms.Valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gramms cannot be null"})
			return
		}
		err := ctl.db.Model(&models.Recipe{}).
			Where("id_dish = ? AND id_product = ?", dishID, productID).
			Update("gramms", input.Gramms.Value).Error
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe updated"})
}

// DELETE /recipes/:dish/:product
func (ctl *RecipeController) Delete(c *gin.Context) {
	dishID, productID, ok := recipeKey(c)
	if !ok {
		return
	}

	var recipe models.Recipe
	err := ctl.db.Where("id_dish = ? AND id_product = ?", dishID, productID).First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = ctl.db.Where("id_dish = ? AND id_product = ?", dishID, productID).
		Delete(&models.Recipe{}).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

// recipeKey parses the composite (dish, product) key from the path and
// replies 400 itself when either segment is not an integer.
func recipeKey(c *gin.Context) (dishID, productID int, ok bool) {
	dishID, err := strconv.Atoi(c.Param("dish"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return 0, 0, false
	}
	productID, err = strconv.Atoi(c.Param("product"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return 0, 0, false
	}
	return dishID, productID, true
}
