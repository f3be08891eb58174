package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/themisatsal/hilla-mobile-sub000/controllers"
	"github.com/themisatsal/hilla-mobile-sub000/middlewares"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Users     *controllers.UserController
	Meals     *controllers.MealController
	Summaries *controllers.SummaryController
	Analytics *controllers.AnalyticsController
	Advice    *controllers.AdviceController
	Realtime  *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers, jwtSecret string) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		api.GET("/user/profile", ctrl.Users.GetProfile)
		api.PUT("/user/profile", ctrl.Users.UpdateProfile)

		api.POST("/meals", ctrl.Meals.LogMeal)
		api.GET("/meals", ctrl.Meals.ListMeals)
		api.GET("/meals/:id", ctrl.Meals.GetMeal)
		api.PUT("/meals/:id", ctrl.Meals.UpdateMeal)
		api.DELETE("/meals/:id", ctrl.Meals.DeleteMeal)

		api.GET("/summary", ctrl.Summaries.GetSummary)
		api.POST("/summary", ctrl.Summaries.CreateSummary)
		api.PUT("/summary", ctrl.Summaries.UpdateSummary)
		api.POST("/summary/recompute", ctrl.Summaries.RecomputeSummary)
		api.DELETE("/summary", ctrl.Summaries.DeleteSummary)
		api.POST("/summary/water", ctrl.Summaries.AddWater)
		api.GET("/summary/warnings", ctrl.Summaries.GetWarnings)

		api.GET("/analytics/trends", ctrl.Analytics.GetTrends)
		api.GET("/analytics/weekly", ctrl.Analytics.GetWeeklyOverview)

		if ctrl.Advice != nil {
			api.POST("/advice", ctrl.Advice.Ask)
		}

		api.GET("/ws", ctrl.Realtime.SummaryWS)
	}

	return r
}
