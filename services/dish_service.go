package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
)

var (
	ErrDishNotFound  = errors.New("dish not found")
	ErrChiefNotFound = errors.New("chief not found")
)

type DishService struct {
	db *gorm.DB
}

func NewDishService(db *gorm.DB) *DishService {
	return &DishService{db: db}
}

// CalculateDishCost sums (gramms/1000)*cost_product over the dish's recipe
// lines. A missing dish costs 0 and a line whose product is gone is skipped.
func (s *DishService) CalculateDishCost(dishID uint) (float64, error) {
	var dish models.Dish
	if err := s.db.First(&dish, dishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	var recipes []models.Recipe
	if err := s.db.Where("id_dish = ?", dishID).Find(&recipes).Error; err != nil {
		return 0, err
	}

	total := 0.0
	for _, r := range recipes {
		var product models.Product
		if err := s.db.First(&product, r.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return 0, err
		}
		total += float64(r.Gramms) / 1000 * float64(product.Cost)
	}

	return math.Round(total*100) / 100, nil
}

// SeasonalDishes returns the dishes whose season matches the given name
// exactly. An unknown season yields an empty list.
func (s *DishService) SeasonalDishes(seasonName string) ([]models.Dish, error) {
	var season models.Season
	if err := s.db.Where("name_season = ?", seasonName).First(&season).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Dish{}, nil
		}
		return nil, err
	}

	dishes := []models.Dish{}
	if err := s.db.Where("id_season = ?", season.ID).Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

type ChiefChange struct {
	OldChiefID *uint `json:"old_chef_id"`
	NewChiefID uint  `json:"new_chef_id"`
}

// ChangeChief reassigns the dish to a new chief and reports both ids.
func (s *DishService) ChangeChief(dishID, newChiefID uint) (*ChiefChange, error) {
	var dish models.Dish
	if err := s.db.First(&dish, dishID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}

	var chief models.Chief
	if err := s.db.First(&chief, newChiefID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChiefNotFound
		}
		return nil, err
	}

	change := &ChiefChange{OldChiefID: dish.ChiefID, NewChiefID: newChiefID}
	if err := s.db.Model(&dish).Update("id_chief", newChiefID).Error; err != nil {
		return nil, err
	}
	return change, nil
}

// Search filters dishes by any combination of country, season and group.
// Nil filters are ignored.
func (s *DishService) Search(countryID, seasonID, groupID *uint) ([]models.Dish, error) {
	query := s.db.Model(&models.Dish{})
	if countryID != nil {
		query = query.Where("id_country = ?", *countryID)
	}
	if seasonID != nil {
		query = query.Where("id_season = ?", *seasonID)
	}
	if groupID != nil {
		query = query.Where("id_group = ?", *groupID)
	}

	dishes := []models.Dish{}
	if err := query.Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}
