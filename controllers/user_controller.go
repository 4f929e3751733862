package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// GET /users
func (ctl *UserController) List(c *gin.Context) {
	users := []models.User{}
	if err := ctl.db.Find(&users).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, serializeUser(u))
	}
	c.JSON(http.StatusOK, out)
}

// GET /users/:id
func (ctl *UserController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var user models.User
	if err := ctl.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, serializeUser(user))
}

type CreateUserInput struct {
	NameUser  string `json:"name_user" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Age       string `json:"age"`
	CountryID *uint  `json:"id_country" binding:"required"`
	Sex       string `json:"sex" binding:"required"`
}

// POST /users — admin bulk entry; accounts created here carry no credential
// and cannot log in until one is set through registration.
func (ctl *UserController) Create(c *gin.Context) {
	var input CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var birthDate *time.Time
	if input.Age != "" {
		parsed, err := time.Parse("2006-01-02", input.Age)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		birthDate = &parsed
	}

	user := models.User{
		Name:      input.NameUser,
		Email:     input.Email,
		BirthDate: birthDate,
		CountryID: input.CountryID,
		Sex:       input.Sex,
	}
	if err := ctl.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id_user": user.ID, "name_user": user.Name})
}

// DELETE /users/:id
func (ctl *UserController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var user models.User
	if err := ctl.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.db.Delete(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// serializeUser flattens a user row; the birth date becomes a plain
// YYYY-MM-DD string or null and the credential never leaves the store.
func serializeUser(u models.User) gin.H {
	var age interface{}
	if u.BirthDate != nil {
		age = u.BirthDate.Format("2006-01-02")
	}
	return gin.H{
		"id_user":    u.ID,
		"name_user":  u.Name,
		"email":      u.Email,
		"age":        age,
		"id_country": u.CountryID,
		"sex":        u.Sex,
		"is_admin":   u.IsAdmin,
	}
}
