package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/myloyo/bd-8/config"
	"github.com/myloyo/bd-8/controllers"
	"github.com/myloyo/bd-8/middlewares"
	"github.com/myloyo/bd-8/services"
)

// SetupRouter wires every route with its middleware chain. Reads on the
// catalog are public; writes need a bearer token and destructive or
// user-facing admin operations additionally need the admin claim.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	authSvc := services.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	dishSvc := services.NewDishService(db)
	ratingSvc := services.NewRatingService(db)
	orderSvc := services.NewOrderService(db)

	auth := controllers.NewAuthController(authSvc)
	dishes := controllers.NewDishController(db, dishSvc)
	countries := controllers.NewCountryController(db)
	seasons := controllers.NewSeasonController(db)
	dishTypes := controllers.NewDishTypeController(db)
	chiefs := controllers.NewChiefController(db)
	products := controllers.NewProductController(db)
	recipes := controllers.NewRecipeController(db)
	users := controllers.NewUserController(db)
	ratings := controllers.NewRatingController(db, ratingSvc)
	orders := controllers.NewOrderController(db, orderSvc)
	reports := controllers.NewReportController(ratingSvc)

	authRequired := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminRequired := middlewares.AdminMiddleware()

	// public
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	r.GET("/dishes", dishes.List)
	r.GET("/dishes/:id", dishes.Get)
	r.GET("/dishes/:id/cost", dishes.Cost)
	r.GET("/dishes/seasonal/:season", dishes.Seasonal)

	r.GET("/countries", countries.List)
	r.GET("/countries/:id", countries.Get)
	r.GET("/seasons", seasons.List)
	r.GET("/dishtypes", dishTypes.List)
	r.GET("/dishtypes/:id", dishTypes.Get)
	r.GET("/chiefs", chiefs.List)
	r.GET("/products", products.List)
	r.GET("/products/:id", products.Get)
	r.GET("/recipes", recipes.List)
	r.GET("/recipes/:dish/:product", recipes.Get)

	// bearer token
	bearer := r.Group("/", authRequired)
	{
		bearer.POST("/dishes", dishes.Create)
		bearer.GET("/dishes/search", dishes.Search)
		bearer.POST("/dishes/:id/change_chef", dishes.ChangeChief)
		bearer.POST("/ratings", ratings.Create)
		bearer.POST("/orders", orders.Create)
		bearer.GET("/reports/dish_ratings", reports.DishRatings)
	}

	// admin
	admin := r.Group("/", authRequired, adminRequired)
	{
		admin.PUT("/dishes/:id", dishes.Update)
		admin.DELETE("/dishes/:id", dishes.Delete)

		admin.POST("/countries", countries.Create)
		admin.DELETE("/countries/:id", countries.Delete)
		admin.POST("/seasons", seasons.Create)
		admin.DELETE("/seasons/:id", seasons.Delete)
		admin.POST("/dishtypes", dishTypes.Create)
		admin.PUT("/dishtypes/:id", dishTypes.Update)
		admin.DELETE("/dishtypes/:id", dishTypes.Delete)
		admin.POST("/chiefs", chiefs.Create)
		admin.POST("/products", products.Create)
		admin.PUT("/products/:id", products.Update)
		admin.DELETE("/products/:id", products.Delete)
		admin.POST("/recipes", recipes.Create)
		admin.PUT("/recipes/:dish/:product", recipes.Update)
		admin.DELETE("/recipes/:dish/:product", recipes.Delete)

		admin.GET("/users", users.List)
		admin.GET("/users/:id", users.Get)
		admin.POST("/users", users.Create)
		admin.DELETE("/users/:id", users.Delete)

		admin.GET("/ratings", ratings.List)
		admin.DELETE("/ratings/:id", ratings.Delete)
		admin.GET("/orders", orders.List)
		admin.DELETE("/orders/:id", orders.Delete)
	}

	return r
}
