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

type DishController struct {
	db  *gorm.DB
	svc *services.DishService
}

func NewDishController(db *gorm.DB, svc *services.DishService) *DishController {
	return &DishController{db: db, svc: svc}
}

// GET /dishes
func (ctl *DishController) List(c *gin.Context) {
	dishes := []models.Dish{}
	if err := ctl.db.Find(&dishes).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// GET /dishes/:id
func (ctl *DishController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	var dish models.Dish
	if err := ctl.db.First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dish)
}

type CreateDishInput struct {
	NameDish  string `json:"name_dish" binding:"required"`
	SeasonID  *uint  `json:"id_season" binding:"required"`
	CountryID *uint  `json:"id_country" binding:"required"`
	GroupID   *uint  `json:"id_group" binding:"required"`
	ChiefID   *uint  `json:"id_chief" binding:"required"`
}

// POST /dishes
func (ctl *DishController) Create(c *gin.Context) {
	var input CreateDishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish := models.Dish{
		Name:      input.NameDish,
		SeasonID:  input.SeasonID,
		CountryID: input.CountryID,
		GroupID:   input.GroupID,
		ChiefID:   input.ChiefID,
	}
	if err := ctl.db.Create(&dish).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "dish created", "id": dish.ID})
}

type UpdateDishInput struct {
	NameDish  Optional[string] `json:"name_dish"`
	SeasonID  Optional[uint]   `json:"id_season"`
	CountryID Optional[uint]   `json:"id_country"`
	GroupID   Optional[uint]   `json:"id_group"`
	ChiefID   Optional[uint]   `json:"id_chief"`
}

// PUT /dishes/:id — absent fields are left unchanged.
func (ctl *DishController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	var dish models.Dish
	if err := ctl.db.First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input UpdateDishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// the FK columns are nullable, so an explicit null clears them;
	// name_dish is not and rejects null.
	updates := map[string]interface{}{}
	if input.NameDish.Set {
		if !input.NameDish.Valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name_dish cannot be null"})
			return
		}
		updates["name_dish"] = input.NameDish.Value
	}
	if input.SeasonID.Set {
		updates["id_season"] = input.SeasonID.Ptr()
	}
	if input.CountryID.Set {
		updates["id_country"] = input.CountryID.Ptr()
	}
	if input.GroupID.Set {
		updates["id_group"] = input.GroupID.Ptr()
	}
	if input.ChiefID.Set {
		updates["id_chief"] = input.ChiefID.Ptr()
	}

	if len(updates) > 0 {
		if err := ctl.db.Model(&dish).Updates(updates).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "dish updated"})
}

// DELETE /dishes/:id
func (ctl *DishController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	var dish models.Dish
	if err := ctl.db.First(&dish, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.db.Delete(&dish).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dish deleted"})
}

// GET /dishes/:id/cost
func (ctl *DishController) Cost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	cost, err := ctl.svc.CalculateDishCost(uint(id))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cost": cost})
}

// GET /dishes/seasonal/:season
func (ctl *DishController) Seasonal(c *gin.Context) {
	dishes, err := ctl.svc.SeasonalDishes(c.Param("season"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// GET /dishes/search?country_id&season_id&group_id
func (ctl *DishController) Search(c *gin.Context) {
	countryID, err := optionalUintQuery(c, "country_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid country_id"})
		return
	}
	seasonID, err := optionalUintQuery(c, "season_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season_id"})
		return
	}
	groupID, err := optionalUintQuery(c, "group_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group_id"})
		return
	}

	dishes, err := ctl.svc.Search(countryID, seasonID, groupID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, gin.H{"id_dish": d.ID, "name_dish": d.Name})
	}
	c.JSON(http.StatusOK, out)
}

type ChangeChiefInput struct {
	NewChefID *uint `json:"new_chef_id" binding:"required"`
}

// POST /dishes/:id/change_chef
func (ctl *DishController) ChangeChief(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return
	}

	var input ChangeChiefInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	change, err := ctl.svc.ChangeChief(uint(id), *input.NewChefID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "chef changed successfully",
		"old_chef_id": change.OldChiefID,
		"new_chef_id": change.NewChiefID,
	})
}

// optionalUintQuery reads a typed filter; an absent or zero value means
// "no filter".
func optionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	if v == 0 {
		return nil, nil
	}
	u := uint(v)
	return &u, nil
}
