package consts

const (
	MimePrefixImage = "image"
)

const (
	// VoteUp / VoteDown 是投票的唯二合法取值
	VoteUp   = 1
	VoteDown = -1
)

const (
	// EvaluationDimensionCount 教授评价的固定维度数
	EvaluationDimensionCount = 6
	EvaluationScoreMin       = 1
	EvaluationScoreMax       = 5
	EvaluationScoreDefault   = 3
)

const (
	RoleAdmin     = "ADMIN"
	RoleModerator = "MODERATOR"
)

const (
	DefaultProfessorImage = "default_professor.png"
)
