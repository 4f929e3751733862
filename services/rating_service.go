package services

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/myloyo/bd-8/models"
)

var ErrRateOutOfRange = errors.New("rating must be between 1 and 5")

type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// AddRating validates the rate and writes a rating row. When the caller
// supplies an explicit id the row is created with it; collisions surface as
// a storage error. The date is always set server-side.
func (s *RatingService) AddRating(userID, dishID uint, rate int, comment string, idRate *uint) error {
	if rate < 1 || rate > 5 {
		return ErrRateOutOfRange
	}

	rating := models.DishRating{
		UserID:  userID,
		DishID:  dishID,
		Rate:    rate,
		Comment: comment,
		Date:    time.Now(),
	}
	if idRate != nil {
		rating.ID = *idRate
	}

	return s.db.Create(&rating).Error
}

type DishRatingReport struct {
	DishID    uint    `json:"dish_id"`
	DishName  string  `json:"dish_name"`
	AvgRating float64 `json:"avg_rating"`
	Comments  string  `json:"comments"`
}

// Report aggregates ratings per dish and keeps dishes whose average rate
// meets the threshold. Comments are joined with "; " in rating-id order,
// rows are ordered by dish id, averages rounded to 2 decimal places.
// A rating pointing at a deleted dish is dropped from the report.
func (s *RatingService) Report(minRating int) ([]DishRatingReport, error) {
	var ratings []models.DishRating
	if err := s.db.Order("id_rate asc").Find(&ratings).Error; err != nil {
		return nil, err
	}

	type agg struct {
		sum      int
		count    int
		comments []string
	}
	byDish := map[uint]*agg{}
	order := []uint{}
	for _, r := range ratings {
		a, ok := byDish[r.DishID]
		if !ok {
			a = &agg{}
			byDish[r.DishID] = a
			order = append(order, r.DishID)
		}
		a.sum += r.Rate
		a.count++
		if r.Comment != "" {
			a.comments = append(a.comments, r.Comment)
		}
	}

	report := []DishRatingReport{}
	for _, dishID := range order {
		a := byDish[dishID]
		avg := float64(a.sum) / float64(a.count)
		if avg < float64(minRating) {
			continue
		}

		var dish models.Dish
		if err := s.db.First(&dish, dishID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		report = append(report, DishRatingReport{
			DishID:    dishID,
			DishName:  dish.Name,
			AvgRating: math.Round(avg*100) / 100,
			Comments:  strings.Join(a.comments, "; "),
		})
	}

	sort.Slice(report, func(i, j int) bool { return report[i].DishID < report[j].DishID })

	return report, nil
}
