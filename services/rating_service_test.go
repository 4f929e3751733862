package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myloyo/bd-8/models"
)

func TestAddRatingRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	for _, rate := range []int{0, -1, 6, 100} {
		err := svc.AddRating(1, 1, rate, "", nil)
		assert.ErrorIs(t, err, ErrRateOutOfRange)
	}

	var count int64
	require.NoError(t, db.Model(&models.DishRating{}).Count(&count).Error)
	assert.Zero(t, count, "no row may be written for an invalid rate")
}

func TestAddRating(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	before := time.Now()
	require.NoError(t, svc.AddRating(7, 3, 5, "delicious", nil))

	var rating models.DishRating
	require.NoError(t, db.First(&rating).Error)
	assert.Equal(t, uint(7), rating.UserID)
	assert.Equal(t, uint(3), rating.DishID)
	assert.Equal(t, 5, rating.Rate)
	assert.Equal(t, "delicious", rating.Comment)
	assert.False(t, rating.Date.Before(before.Add(-time.Second)))
}

func TestAddRatingExplicitID(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	require.NoError(t, svc.AddRating(1, 1, 4, "", ptr(uint(55))))

	var rating models.DishRating
	require.NoError(t, db.First(&rating, 55).Error)
	assert.Equal(t, 4, rating.Rate)

	// reusing the id is a storage-level conflict, surfaced as an error
	err := svc.AddRating(1, 1, 3, "", ptr(uint(55)))
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	require.NoError(t, db.Create(&models.Dish{ID: 1, Name: "Borscht"}).Error)
	require.NoError(t, db.Create(&models.Dish{ID: 2, Name: "Olivier"}).Error)

	seed := []models.DishRating{
		{ID: 1, DishID: 1, UserID: 1, Rate: 5, Comment: "excellent"},
		{ID: 2, DishID: 1, UserID: 2, Rate: 4, Comment: "very tasty"},
		{ID: 3, DishID: 2, UserID: 1, Rate: 2, Comment: "too salty"},
		{ID: 4, DishID: 2, UserID: 2, Rate: 3},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	report, err := svc.Report(3)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, uint(1), report[0].DishID)
	assert.Equal(t, "Borscht", report[0].DishName)
	assert.Equal(t, 4.5, report[0].AvgRating)
	assert.Equal(t, "excellent; very tasty", report[0].Comments)

	report, err = svc.Report(1)
	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.Equal(t, uint(1), report[0].DishID)
	assert.Equal(t, uint(2), report[1].DishID)
	assert.Equal(t, 2.5, report[1].AvgRating)
	assert.Equal(t, "too salty", report[1].Comments, "empty comments are skipped")
}

func TestReportSkipsDeletedDish(t *testing.T) {
	db := newTestDB(t)
	svc := NewRatingService(db)

	require.NoError(t, db.Create(&models.DishRating{ID: 1, DishID: 9, UserID: 1, Rate: 5}).Error)

	report, err := svc.Report(1)
	require.NoError(t, err)
	assert.Empty(t, report)
}
