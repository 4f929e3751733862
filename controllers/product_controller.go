package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
)

type ProductController struct {
	db *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{db: db}
}

// GET /products
func (ctl *ProductController) List(c *gin.Context) {
	products := []models.Product{}
	if err := ctl.db.Find(&products).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /products/:id
func (ctl *ProductController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var product models.Product
	if err := ctl.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

type CreateProductInput struct {
	NameProduct string `json:"name_product" binding:"required"`
	Calories    *int   `json:"calories" binding:"required"`
	CostProduct *int   `json:"cost_product" binding:"required"`
	SeasonID    *uint  `json:"id_season"`
}

// POST /products
func (ctl *ProductController) Create(c *gin.Context) {
	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		Name:     input.NameProduct,
		Calories: *input.Calories,
		Cost:     *input.CostProduct,
		SeasonID: input.SeasonID,
	}
	if err := ctl.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id_prod": product.ID, "name_product": product.Name})
}

type UpdateProductInput struct {
	NameProduct Optional[string] `json:"name_product"`
	Calories    Optional[int]    `json:"calories"`
	CostProduct Optional[int]    `json:"cost_product"`
	SeasonID    Optional[uint]   `json:"id_season"`
}

// PUT /products/:id — absent fields are left unchanged.
func (ctl *ProductController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var product models.Product
	if err := ctl.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// id_season is the only nullable column; the rest reject explicit null
	updates := map[string]interface{}{}
	if input.NameProduct.Set {
		if !input.NameProduct.Valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name_product cannot be null"})
			return
		}
		updates["name_product"] = input.NameProduct.Value
	}
	if input.Calories.Set {
		if !input.Calories.Valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "calories cannot be null"})
			return
		}
		updates["calories"] = input.Calories.Value
	}
	if input.CostProduct.Set {
		if !input.CostProduct.Valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cost_product cannot be null"})
			return
		}
		updates["cost_product"] = input.CostProduct.Value
	}
	if input.SeasonID.Set {
		updates["id_season"] = input.SeasonID.Ptr()
	}

	if len(updates) > 0 {
		if err := ctl.db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// DELETE /products/:id
func (ctl *ProductController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var product models.Product
	if err := ctl.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.db.Delete(&product).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
