package routes

import (
	"github.com/prateeksteaparty/vital-wellness/controllers"
	"github.com/prateeksteaparty/vital-wellness/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://vital-wellness.vercel.app",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Public auth routes
	auth := r.Group("/api/user")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/signin", controllers.Signin)
	}

	// Everything else assumes an authenticated caller
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/details/:id", controllers.GetUserDetails)
		api.DELETE("/user/:id", controllers.DeleteUser)

		api.POST("/save", controllers.SaveRecommendation)
		api.GET("/saved/:userId", controllers.GetSaved)

		api.POST("/feedback", controllers.SubmitFeedback)
		api.GET("/feedback/:userId", controllers.GetFeedback)

		api.POST("/issues", controllers.AnalyzeIssue)
	}

	return r
}
