package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
	"github.com/myloyo/bd-8/utils"
)

var (
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so the response never leaks whether the account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	db       *gorm.DB
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, secret []byte, tokenTTL time.Duration) *AuthService {
	return &AuthService{db: db, secret: secret, tokenTTL: tokenTTL}
}

// Register creates a user with a hashed credential. The email check happens
// here rather than in the schema, matching the legacy database.
func (s *AuthService) Register(email, password, name string, isAdmin bool) error {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}
	return s.db.Create(&user).Error
}

// Login checks the credential and issues a token embedding the user id and
// admin flag.
func (s *AuthService) Login(email, password string) (token string, isAdmin bool, err error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", false, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", false, ErrInvalidCredentials
	}

	token, err = utils.GenerateJWT(s.secret, user.ID, user.IsAdmin, s.tokenTTL)
	if err != nil {
		return "", false, err
	}
	return token, user.IsAdmin, nil
}
