package dto

// DailyStatsDTO 当日配额使用情况，剩余量由服务端算好，下限为 0
type DailyStatsDTO struct {
	Date               string `json:"date"`
	ReviewsUsed        int    `json:"reviews_used"`
	ReviewLimit        int    `json:"review_limit"`
	ReviewsRemaining   int    `json:"reviews_remaining"`
	QuestionsUsed      int    `json:"questions_used"`
	QuestionLimit      int    `json:"question_limit"`
	QuestionsRemaining int    `json:"questions_remaining"`
}

// ReconcileResultDTO 对账结果
type ReconcileResultDTO struct {
	Checked   int `json:"checked"`
	Corrected int `json:"corrected"`
}
