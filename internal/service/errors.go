package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	TooManyRequests     = 429
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserBan                 = errors.New("用户已被封禁")
	ErrUserUsernameExist       = errors.New("用户名已存在")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrProfessorNotFound       = errors.New("教授不存在")
	ErrReviewNotFound          = errors.New("评价不存在")
	ErrQuestionNotFound        = errors.New("提问不存在")
	ErrAnswerNotFound          = errors.New("回答不存在")
	ErrRatingOutOfRange        = errors.New("评分必须在 1 到 5 之间")
	ErrScoreOutOfRange         = errors.New("各维度评分必须在 1 到 5 之间")
	ErrVoteValueInvalid        = errors.New("投票值无效")
	ErrTargetNotVisible        = errors.New("内容尚未通过审核")
	ErrReviewQuotaExceeded     = errors.New("您今天的评价次数已用完，请明天再试")
	ErrQuestionQuotaExceeded   = errors.New("您今天的提问次数已用完，请明天再试")
	ErrFileNotSupported        = errors.New("不支持的文件类型")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserBan:                 Unauthorized,
	ErrUserUsernameExist:       BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrProfessorNotFound:       NotFound,
	ErrReviewNotFound:          NotFound,
	ErrQuestionNotFound:        NotFound,
	ErrAnswerNotFound:          NotFound,
	ErrRatingOutOfRange:        BadRequest,
	ErrScoreOutOfRange:         BadRequest,
	ErrVoteValueInvalid:        BadRequest,
	ErrTargetNotVisible:        BadRequest,
	ErrReviewQuotaExceeded:     TooManyRequests,
	ErrQuestionQuotaExceeded:   TooManyRequests,
	ErrFileNotSupported:        BadRequest,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}
