package controller

import (
	"trivia_backend/internal/model"
	"trivia_backend/internal/service"
	"trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
	QuestionService *service.QuestionService
}

func NewCategoryController(categoryService *service.CategoryService, questionService *service.QuestionService) *CategoryController {
	return &CategoryController{CategoryService: categoryService, QuestionService: questionService}
}

// @Summary 获取全部分类
// @Description 返回 id -> 分类名称 的映射
// @Tags 分类
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /categories [get]
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	categories, err := c.CategoryService.ListCategories(ctx.Request.Context())
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"categories": model.CategoryMap(categories)})
}

// @Summary 按分类获取题目
// @Description 分页返回指定分类下的题目，分类不存在时返回 422
// @Tags 分类
// @Produce json
// @Param id path int true "分类ID"
// @Param page query int false "页码" default(1)
// @Success 200 {object} CategoryQuestionsResponse
// @Failure 404 {object} util.ErrorResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /categories/{id}/questions [get]
func (c *CategoryController) ListCategoryQuestions(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx)
		return
	}

	page, category, err := c.QuestionService.ListQuestionsByCategory(ctx.Request.Context(), id, util.PageFromQuery(ctx))
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"questions":       page.Questions,
		"totalQuestions":  page.Total,
		"currentCategory": category.Type,
	})
}
