package dto

// PendingContentDTO 待审核内容列表项
type PendingContentDTO struct {
	ID          uint64 `json:"id"`
	ContentType string `json:"content_type"` // review / question / answer
	ProfessorID uint64 `json:"professor_id,omitempty"`
	QuestionID  uint64 `json:"question_id,omitempty"`
	UserID      uint64 `json:"user_id"`
	Username    string `json:"username"`
	Text        string `json:"text"`
	Rating      uint8  `json:"rating,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// MediaUploadResultDTO 媒体上传结果
type MediaUploadResultDTO struct {
	URL string `json:"url"`
}
