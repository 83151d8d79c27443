package app

import (
	"trivia_backend/docs"
	"trivia_backend/internal/util"
	"trivia_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// 1. 分类
	a.registerCategoryRoutes(router, c)

	// 2. 题目
	a.registerQuestionRoutes(router, c)

	// 3. 答题
	router.POST("/quizzes", c.quiz.PlayQuiz)

	router.NoRoute(util.NotFound)
}

func (a *App) registerCategoryRoutes(router *gin.Engine, c *controllers) {
	categories := router.Group("/categories")
	{
		categories.GET("", c.category.ListCategories)
		categories.GET("/:id/questions", c.category.ListCategoryQuestions)
	}
}

func (a *App) registerQuestionRoutes(router *gin.Engine, c *controllers) {
	questions := router.Group("/questions")
	{
		questions.GET("", c.question.ListQuestions)
		questions.POST("", c.question.CreateQuestion)
		questions.POST("/search", c.question.SearchQuestions)
		questions.DELETE("/:id", c.question.DeleteQuestion)
	}
}
