package controller

import "trivia_backend/internal/model"

// 以下类型仅用于 swagger 文档

type CategoriesResponse struct {
	Success    bool              `json:"success" example:"true"`
	Categories map[string]string `json:"categories"`
}

type QuestionsResponse struct {
	Success         bool                      `json:"success" example:"true"`
	Questions       []model.FormattedQuestion `json:"questions"`
	TotalQuestions  int                       `json:"totalQuestions" example:"19"`
	CurrentCategory *string                   `json:"currentCategory"`
	Categories      map[string]string         `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool                      `json:"success" example:"true"`
	Questions       []model.FormattedQuestion `json:"questions"`
	TotalQuestions  int                       `json:"totalQuestions" example:"3"`
	CurrentCategory string                    `json:"currentCategory" example:"Science"`
}

type SearchQuestionsResponse struct {
	Success        bool                      `json:"success" example:"true"`
	Questions      []model.FormattedQuestion `json:"questions"`
	TotalQuestions int                       `json:"totalQuestions" example:"2"`
}

type DeleteQuestionResponse struct {
	Success    bool `json:"success" example:"true"`
	QuestionID uint `json:"question_id" example:"5"`
}

type CreateQuestionResponse struct {
	Success bool `json:"success" example:"true"`
	Created uint `json:"created" example:"24"`
}

type QuizResponse struct {
	Success  bool                     `json:"success" example:"true"`
	Question *model.FormattedQuestion `json:"question"`
}

type HealthResponse struct {
	Success    bool              `json:"success"`
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}
