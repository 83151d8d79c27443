package model

// Question 题目。Category 引用 Category.ID，但不建立外键约束
type Question struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Question   string `gorm:"type:text" json:"question"`
	Answer     string `gorm:"type:text" json:"answer"`
	Category   int    `gorm:"index" json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}

// FormattedQuestion 对外输出的题目结构
// swagger:model
type FormattedQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (q *Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func FormatQuestions(questions []Question) []FormattedQuestion {
	out := make([]FormattedQuestion, 0, len(questions))
	for i := range questions {
		out = append(out, questions[i].Format())
	}
	return out
}
