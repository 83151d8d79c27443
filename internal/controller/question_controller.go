package controller

import (
	"trivia_backend/internal/model"
	"trivia_backend/internal/service"
	"trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
	CategoryService *service.CategoryService
}

func NewQuestionController(questionService *service.QuestionService, categoryService *service.CategoryService) *QuestionController {
	return &QuestionController{QuestionService: questionService, CategoryService: categoryService}
}

// CreateQuestionRequest 带 searchTerm 时按搜索处理
type CreateQuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   flexInt `json:"category" swaggertype:"integer"`
	Difficulty flexInt `json:"difficulty" swaggertype:"integer"`
	SearchTerm *string `json:"searchTerm"`
}

type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// @Summary 分页获取题目
// @Description 每页 10 条；页内没有题目（含超出最后一页）时返回 404
// @Tags 题目
// @Produce json
// @Param page query int false "页码" default(1)
// @Success 200 {object} QuestionsResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	page, err := c.QuestionService.ListQuestions(ctx.Request.Context(), util.PageFromQuery(ctx))
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	categories, err := c.CategoryService.ListCategories(ctx.Request.Context())
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	var currentCategory *string
	if v, ok := ctx.GetPostForm("category"); ok {
		currentCategory = &v
	}

	util.Success(ctx, gin.H{
		"questions":       page.Questions,
		"totalQuestions":  page.Total,
		"currentCategory": currentCategory,
		"categories":      model.CategoryMap(categories),
	})
}

// @Summary 删除题目
// @Tags 题目
// @Produce json
// @Param id path int true "题目ID"
// @Success 200 {object} DeleteQuestionResponse
// @Failure 404 {object} util.ErrorResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := util.ParseID(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx)
		return
	}

	if err := c.QuestionService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"question_id": id})
}

// @Summary 新建题目
// @Description 不校验字段。请求体包含 searchTerm 时改为执行搜索，等同于 POST /questions/search
// @Tags 题目
// @Accept json
// @Produce json
// @Param request body CreateQuestionRequest true "题目信息"
// @Param page query int false "搜索时的页码" default(1)
// @Success 200 {object} CreateQuestionResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req CreateQuestionRequest
	if err := bindJSON(ctx, &req, util.ErrInvalidFields); err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	if req.SearchTerm != nil {
		c.search(ctx, req.SearchTerm)
		return
	}

	question, err := c.QuestionService.CreateQuestion(ctx.Request.Context(), service.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   int(req.Category),
		Difficulty: int(req.Difficulty),
	})
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"created": question.ID})
}

// @Summary 搜索题目
// @Description 题干不区分大小写的子串匹配，每页 10 条
// @Tags 题目
// @Accept json
// @Produce json
// @Param request body SearchQuestionsRequest true "搜索词"
// @Param page query int false "页码" default(1)
// @Success 200 {object} SearchQuestionsResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /questions/search [post]
func (c *QuestionController) SearchQuestions(ctx *gin.Context) {
	var req SearchQuestionsRequest
	if err := bindJSON(ctx, &req, util.ErrInvalidBody); err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	c.search(ctx, req.SearchTerm)
}

func (c *QuestionController) search(ctx *gin.Context, term *string) {
	page, err := c.QuestionService.SearchQuestions(ctx.Request.Context(), term, util.PageFromQuery(ctx))
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"questions":      page.Questions,
		"totalQuestions": page.Total,
	})
}
