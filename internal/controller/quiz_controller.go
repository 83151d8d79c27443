package controller

import (
	"trivia_backend/internal/service"
	"trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// QuizRequest quiz_category 为分类名称，空表示全部分类
type QuizRequest struct {
	PreviousQuestions []uint `json:"previous_questions"`
	QuizCategory      string `json:"quiz_category"`
}

// @Summary 获取下一道答题题目
// @Description 从未出现过的题目中随机返回一道；没有剩余题目时 question 为 null
// @Tags 答题
// @Accept json
// @Produce json
// @Param request body QuizRequest true "已答题目与分类"
// @Success 200 {object} QuizResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 422 {object} util.ErrorResponse
// @Router /quizzes [post]
func (c *QuizController) PlayQuiz(ctx *gin.Context) {
	var req QuizRequest
	if err := bindJSON(ctx, &req, util.ErrInvalidBody); err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	question, err := c.QuizService.NextQuestion(ctx.Request.Context(), req.PreviousQuestions, req.QuizCategory)
	if err != nil {
		util.AbortWithError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"question": question})
}
