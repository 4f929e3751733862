package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/myloyo/bd-8/config"
	"github.com/myloyo/bd-8/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	cfg := &config.Config{
		JWTSecret: []byte("test-secret"),
		TokenTTL:  time.Hour,
	}
	return SetupRouter(db, cfg), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestRegisterLoginAndRoleGates(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": "a@x.com", "password": "p", "name_user": "A", "is_admin": false,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// duplicate email
	w = doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": "a@x.com", "password": "q", "name_user": "B",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/login", "", gin.H{"email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusOK, w.Code)
	var loginResp struct {
		AccessToken string `json:"access_token"`
		IsAdmin     bool   `json:"is_admin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	assert.False(t, loginResp.IsAdmin)

	// wrong password and unknown email yield the same 401
	w = doJSON(t, r, http.MethodPost, "/login", "", gin.H{"email": "a@x.com", "password": "bad"})
	wrong := w.Body.String()
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, r, http.MethodPost, "/login", "", gin.H{"email": "ghost@x.com", "password": "p"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrong, w.Body.String())

	// non-admin token cannot list users
	w = doJSON(t, r, http.MethodGet, "/users", loginResp.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// no token at all
	w = doJSON(t, r, http.MethodGet, "/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// admin token can
	w = doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": "root@x.com", "password": "p", "name_user": "Root", "is_admin": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	adminToken := login(t, r, "root@x.com", "p")

	w = doJSON(t, r, http.MethodGet, "/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.NotContains(t, u, "password_hash")
	}
}

func TestRecipeCostEndToEnd(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.Dish{ID: 1, Name: "Salad"}).Error)
	require.NoError(t, db.Create(&models.Product{ID: 1, Name: "Tomato", Cost: 10}).Error)

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": "adm@x.com", "password": "p", "name_user": "Adm", "is_admin": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, r, "adm@x.com", "p")

	w = doJSON(t, r, http.MethodPost, "/recipes", token, gin.H{
		"id_dish": 1, "id_product": 1, "gramms": 200,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/dishes/1/cost", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Cost float64 `json:"cost"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2.0, resp.Cost)
}

func TestMissingBodyFieldIsBadRequest(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": "adm@x.com", "password": "p", "name_user": "Adm", "is_admin": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, r, "adm@x.com", "p")

	// dish create without its required fields
	w = doJSON(t, r, http.MethodPost, "/dishes", token, gin.H{"name_dish": "Incomplete"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// order without id_user
	w = doJSON(t, r, http.MethodPost, "/orders", token, gin.H{"id_dish": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// rating without rate
	w = doJSON(t, r, http.MethodPost, "/ratings", token, gin.H{"user_id": 1, "dish_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCountryDeleteLeavesDanglingRefs(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.Country{ID: 1, Name: "France"}).Error)
	require.NoError(t, db.Create(&models.Chief{ID: 1, Name: "Pierre", CountryID: ptrUint(1)}).Error)
	require.NoError(t, db.Create(&models.Dish{ID: 1, Name: "Crepes", CountryID: ptrUint(1)}).Error)

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": "adm@x.com", "password": "p", "name_user": "Adm", "is_admin": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, r, "adm@x.com", "p")

	w = doJSON(t, r, http.MethodDelete, "/countries/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// dependents keep the dangling id
	var chief models.Chief
	require.NoError(t, db.First(&chief, 1).Error)
	require.NotNil(t, chief.CountryID)
	assert.Equal(t, uint(1), *chief.CountryID)

	w = doJSON(t, r, http.MethodGet, "/dishes/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dish models.Dish
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dish))
	require.NotNil(t, dish.CountryID)
	assert.Equal(t, uint(1), *dish.CountryID)

	// deleting again is a 404
	w = doJSON(t, r, http.MethodDelete, "/countries/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSeasonalLookupEmpty(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.Season{ID: 1, Name: "Winter"}).Error)

	w := doJSON(t, r, http.MethodGet, "/dishes/seasonal/Winter", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/dishes/seasonal/Nothing", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestPartialUpdate(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.Product{ID: 1, Name: "Beet", Calories: 43, Cost: 10}).Error)

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": "adm@x.com", "password": "p", "name_user": "Adm", "is_admin": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, r, "adm@x.com", "p")

	// only the cost changes; name and calories stay
	w = doJSON(t, r, http.MethodPut, "/products/1", token, gin.H{"cost_product": 12})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var product models.Product
	require.NoError(t, db.First(&product, 1).Error)
	assert.Equal(t, "Beet", product.Name)
	assert.Equal(t, 43, product.Calories)
	assert.Equal(t, 12, product.Cost)

	w = doJSON(t, r, http.MethodPut, "/products/99", token, gin.H{"cost_product": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPartialUpdateExplicitNull(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.Chief{ID: 1, Name: "Ivan"}).Error)
	require.NoError(t, db.Create(&models.Dish{ID: 1, Name: "Crepes", ChiefID: ptrUint(1)}).Error)
	require.NoError(t, db.Create(&models.Product{ID: 1, Name: "Beet", Calories: 43, Cost: 10, SeasonID: ptrUint(2)}).Error)
	require.NoError(t, db.Create(&models.DishType{ID: 1, Type: "soup"}).Error)
	require.NoError(t, db.Create(&models.Recipe{DishID: 1, ProductID: 1, Gramms: 100}).Error)

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": "adm@x.com", "password": "p", "name_user": "Adm", "is_admin": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, r, "adm@x.com", "p")

	// an explicit null clears a nullable FK column
	w = doJSON(t, r, http.MethodPut, "/dishes/1", token, gin.H{"id_chief": nil})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var dish models.Dish
	require.NoError(t, db.First(&dish, 1).Error)
	assert.Nil(t, dish.ChiefID)
	assert.Equal(t, "Crepes", dish.Name)

	w = doJSON(t, r, http.MethodPut, "/products/1", token, gin.H{"id_season": nil})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var product models.Product
	require.NoError(t, db.First(&product, 1).Error)
	assert.Nil(t, product.SeasonID)

	// an explicit null on a non-nullable field is a caller error
	w = doJSON(t, r, http.MethodPut, "/dishes/1", token, gin.H{"name_dish": nil})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, r, http.MethodPut, "/products/1", token, gin.H{"calories": nil})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, r, http.MethodPut, "/dishtypes/1", token, gin.H{"type": nil})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, r, http.MethodPut, "/recipes/1/1", token, gin.H{"gramms": nil})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// rejected nulls leave the rows untouched
	require.NoError(t, db.First(&dish, 1).Error)
	assert.Equal(t, "Crepes", dish.Name)
	require.NoError(t, db.First(&product, 1).Error)
	assert.Equal(t, 43, product.Calories)
	var recipe models.Recipe
	require.NoError(t, db.Where("id_dish = ? AND id_product = ?", 1, 1).First(&recipe).Error)
	assert.Equal(t, 100, recipe.Gramms)
}

func TestChangeChefEndpoint(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.Chief{ID: 1, Name: "Ivan"}).Error)
	require.NoError(t, db.Create(&models.Chief{ID: 2, Name: "Pierre"}).Error)
	require.NoError(t, db.Create(&models.Dish{ID: 1, Name: "Crepes", ChiefID: ptrUint(1)}).Error)

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": "u@x.com", "password": "p", "name_user": "U",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, r, "u@x.com", "p")

	w = doJSON(t, r, http.MethodPost, "/dishes/1/change_chef", token, gin.H{"new_chef_id": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(1), resp["old_chef_id"])
	assert.Equal(t, float64(2), resp["new_chef_id"])

	w = doJSON(t, r, http.MethodPost, "/dishes/9/change_chef", token, gin.H{"new_chef_id": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/dishes/1/change_chef", token, gin.H{"new_chef_id": 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecipeCompositeKeyRoutes(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.Recipe{DishID: 1, ProductID: 2, Gramms: 100}).Error)

	w := doJSON(t, r, http.MethodGet, "/recipes/1/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var recipe models.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, 100, recipe.Gramms)

	w = doJSON(t, r, http.MethodGet, "/recipes/1/9", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": "adm@x.com", "password": "p", "name_user": "Adm", "is_admin": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, r, "adm@x.com", "p")

	w = doJSON(t, r, http.MethodPut, "/recipes/1/2", token, gin.H{"gramms": 250})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, db.Where("id_dish = ? AND id_product = ?", 1, 2).First(&recipe).Error)
	assert.Equal(t, 250, recipe.Gramms)

	w = doJSON(t, r, http.MethodDelete, "/recipes/1/2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	err := db.Where("id_dish = ? AND id_product = ?", 1, 2).First(&recipe).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSearchEndpoint(t *testing.T) {
	r, db := newTestRouter(t)

	require.NoError(t, db.Create(&models.Dish{ID: 1, Name: "A", CountryID: ptrUint(1), SeasonID: ptrUint(1)}).Error)
	require.NoError(t, db.Create(&models.Dish{ID: 2, Name: "B", CountryID: ptrUint(2), SeasonID: ptrUint(1)}).Error)

	// search needs a token
	w := doJSON(t, r, http.MethodGet, "/dishes/search?country_id=1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": "u@x.com", "password": "p", "name_user": "U",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, r, "u@x.com", "p")

	w = doJSON(t, r, http.MethodGet, "/dishes/search?country_id=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "A", rows[0]["name_dish"])

	w = doJSON(t, r, http.MethodGet, "/dishes/search?country_id=oops", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// a zero filter means "no filter"
	w = doJSON(t, r, http.MethodGet, "/dishes/search?country_id=0", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
}

func ptrUint(v uint) *uint { return &v }
