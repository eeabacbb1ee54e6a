package dto

// SubmissionDTO 教授页统一提交入口，form_type 区分评价、提问、回答
type SubmissionDTO struct {
	FormType   string  `json:"form_type" binding:"required,oneof=review question answer"`
	Text       string  `json:"text" binding:"required,min=1,max=2000"`
	Rating     *uint8  `json:"rating" binding:"omitempty,min=1,max=5"` // 仅评价
	QuestionID *uint64 `json:"question_id"`                            // 仅回答
}

// SubmissionResultDTO 提交结果
type SubmissionResultDTO struct {
	FormType  string `json:"form_type"`
	ContentID uint64 `json:"content_id,omitempty"`
	Duplicate bool   `json:"duplicate"`
	Message   string `json:"message"`
}

// VoteDTO 投票请求
type VoteDTO struct {
	Value int8 `json:"value" binding:"required,oneof=1 -1"`
}

// VoteResultDTO 投票后的最新计数
type VoteResultDTO struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	MyVote   int8  `json:"my_vote"` // 0 表示已撤销
}
