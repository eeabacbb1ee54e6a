package dto

// ReviewDTO 评价返回详情
type ReviewDTO struct {
	ID        uint64 `json:"id"`
	UserID    uint64 `json:"user_id"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	Rating    uint8  `json:"rating"`
	Likes     int64  `json:"likes"`
	Dislikes  int64  `json:"dislikes"`
	CreatedAt string `json:"created_at"`
}

// QuestionDTO 提问及其回答
type QuestionDTO struct {
	ID        uint64       `json:"id"`
	UserID    uint64       `json:"user_id"`
	Username  string       `json:"username"`
	Text      string       `json:"text"`
	CreatedAt string       `json:"created_at"`
	Answers   []*AnswerDTO `json:"answers"`
}

// AnswerDTO 回答返回详情
type AnswerDTO struct {
	ID        uint64 `json:"id"`
	UserID    uint64 `json:"user_id"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	Likes     int64  `json:"likes"`
	Dislikes  int64  `json:"dislikes"`
	CreatedAt string `json:"created_at"`
}
