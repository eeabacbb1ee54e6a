package dto

// ProfessorBaseDTO 教授 - 新增或修改
type ProfessorBaseDTO struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	Department string `json:"department" binding:"max=200"`
	Bio        string `json:"bio" binding:"max=2000"`
	ImageURL   string `json:"image_url" binding:"max=255"`
}

// ProfessorDTO 教授列表项
type ProfessorDTO struct {
	ID            uint64   `json:"id"`
	Name          string   `json:"name"`
	Department    string   `json:"department"`
	ImageURL      string   `json:"image_url"`
	AverageRating *float64 `json:"average_rating"` // 无已审核评价时为 null
	ReviewCount   int64    `json:"review_count"`
}

// ProfessorDetailDTO 教授详情页聚合
type ProfessorDetailDTO struct {
	ID            uint64                `json:"id"`
	Name          string                `json:"name"`
	Department    string                `json:"department"`
	Bio           string                `json:"bio"`
	ImageURL      string                `json:"image_url"`
	AverageRating *float64              `json:"average_rating"`
	Reviews       []*ReviewDTO          `json:"reviews"`
	Questions     []*QuestionDTO        `json:"questions"`
	Evaluation    *EvaluationSummaryDTO `json:"evaluation"`
}
