package dto

// EvaluationDTO 六维度打分，缺省由服务端补 3
type EvaluationDTO struct {
	TeachingMethod     uint8 `json:"teaching_method" binding:"omitempty,min=1,max=5"`
	GradingFlexibility uint8 `json:"grading_flexibility" binding:"omitempty,min=1,max=5"`
	ExamDifficulty     uint8 `json:"exam_difficulty" binding:"omitempty,min=1,max=5"`
	SubjectKnowledge   uint8 `json:"subject_knowledge" binding:"omitempty,min=1,max=5"`
	Respect            uint8 `json:"respect" binding:"omitempty,min=1,max=5"`
	StudentInteraction uint8 `json:"student_interaction" binding:"omitempty,min=1,max=5"`
}

// MyEvaluationDTO 自己的打分及其单行均值
type MyEvaluationDTO struct {
	EvaluationDTO
	AverageScore float64 `json:"average_score"`
}

// DimensionStatDTO 单个维度的汇总：均值、样本数和原始分值列表（前端画分布用）
type DimensionStatDTO struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
	Values  []uint8 `json:"values"`
}

// EvaluationSummaryDTO 全体用户打分的逐维度汇总，均值保留一位小数
type EvaluationSummaryDTO struct {
	TeachingMethod     DimensionStatDTO `json:"teaching_method"`
	GradingFlexibility DimensionStatDTO `json:"grading_flexibility"`
	ExamDifficulty     DimensionStatDTO `json:"exam_difficulty"`
	SubjectKnowledge   DimensionStatDTO `json:"subject_knowledge"`
	Respect            DimensionStatDTO `json:"respect"`
	StudentInteraction DimensionStatDTO `json:"student_interaction"`
	Overall            float64          `json:"overall"`
	Count              int64            `json:"count"`
}
