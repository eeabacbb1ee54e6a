package service

import (
	"Lectern/internal/api/config"
	"Lectern/internal/api/dto"
	"Lectern/internal/model"
	"Lectern/internal/pkg/util"
	"Lectern/internal/repository"
	"context"
	log "log/slog"
	"time"
)

type QAService interface {
	// SubmitQuestion 配额内落库，重复提交返回 Duplicate 标记且不扣配额
	SubmitQuestion(ctx context.Context, userID, professorID uint64, text string) (*dto.SubmissionResultDTO, error)
	// SubmitAnswer 回答不占用每日配额，目标提问必须已过审且属于该教授
	SubmitAnswer(ctx context.Context, userID, professorID, questionID uint64, text string) (*dto.SubmissionResultDTO, error)
	ListApprovedByProfessor(ctx context.Context, professorID uint64) ([]*dto.QuestionDTO, error)
	ListPendingQuestions(ctx context.Context, limit, offset int) ([]*dto.PendingContentDTO, error)
	ListPendingAnswers(ctx context.Context, limit, offset int) ([]*dto.PendingContentDTO, error)
	ApproveQuestion(ctx context.Context, questionID uint64) error
	RejectQuestion(ctx context.Context, questionID uint64) error
	DeleteQuestion(ctx context.Context, questionID uint64) error
	ApproveAnswer(ctx context.Context, answerID uint64) error
	RejectAnswer(ctx context.Context, answerID uint64) error
	DeleteAnswer(ctx context.Context, answerID uint64) error
}

type QAServiceImpl struct {
	qaRepo        repository.QARepo
	professorRepo repository.ProfessorRepo
}

func NewQAService(qaRepo repository.QARepo, professorRepo repository.ProfessorRepo) QAService {
	return &QAServiceImpl{
		qaRepo:        qaRepo,
		professorRepo: professorRepo,
	}
}

func (s *QAServiceImpl) SubmitQuestion(ctx context.Context, userID, professorID uint64, text string) (*dto.SubmissionResultDTO, error) {
	professor, err := s.professorRepo.GetByID(ctx, professorID)
	if err != nil {
		return nil, err
	}
	if professor == nil {
		return nil, ErrProfessorNotFound
	}

	dayStart, dayEnd := util.DayBounds(util.Today())
	duplicate, err := s.qaRepo.FindDuplicateQuestion(ctx, userID, professorID, text, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return &dto.SubmissionResultDTO{
			FormType:  "question",
			ContentID: duplicate.ID,
			Duplicate: true,
			Message:   "您今天已提交过相同的提问",
		}, nil
	}

	question := &model.Question{
		ProfessorID: professorID,
		UserID:      userID,
		Text:        text,
		CreatedAt:   time.Now(),
	}
	limit := config.Cfg.Quota.DailyQuestionLimit
	ok, err := s.qaRepo.CreateQuestionWithQuota(ctx, question, util.Today(), limit)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.WarnContext(ctx, "question quota exceeded", "user_id", userID, "limit", limit)
		return nil, ErrQuestionQuotaExceeded
	}

	return &dto.SubmissionResultDTO{
		FormType:  "question",
		ContentID: question.ID,
		Message:   "提问已提交，审核通过后展示",
	}, nil
}

func (s *QAServiceImpl) SubmitAnswer(ctx context.Context, userID, professorID, questionID uint64, text string) (*dto.SubmissionResultDTO, error) {
	question, err := s.qaRepo.GetApprovedQuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil || question.ProfessorID != professorID {
		return nil, ErrQuestionNotFound
	}

	dayStart, dayEnd := util.DayBounds(util.Today())
	duplicate, err := s.qaRepo.FindDuplicateAnswer(ctx, userID, questionID, text, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		return &dto.SubmissionResultDTO{
			FormType:  "answer",
			ContentID: duplicate.ID,
			Duplicate: true,
			Message:   "您今天已提交过相同的回答",
		}, nil
	}

	answer := &model.Answer{
		QuestionID: questionID,
		UserID:     userID,
		Text:       text,
		CreatedAt:  time.Now(),
	}
	if err = s.qaRepo.CreateAnswer(ctx, answer); err != nil {
		return nil, err
	}

	return &dto.SubmissionResultDTO{
		FormType:  "answer",
		ContentID: answer.ID,
		Message:   "回答已提交，审核通过后展示",
	}, nil
}

func (s *QAServiceImpl) ListApprovedByProfessor(ctx context.Context, professorID uint64) ([]*dto.QuestionDTO, error) {
	questions, err := s.qaRepo.ListApprovedQuestionsByProfessor(ctx, professorID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.QuestionDTO, 0, len(questions))
	for _, question := range questions {
		answers, err := s.qaRepo.ListApprovedAnswersByQuestion(ctx, question.ID)
		if err != nil {
			return nil, err
		}
		answerDTOs := make([]*dto.AnswerDTO, 0, len(answers))
		for _, answer := range answers {
			likes, dislikes, err := s.qaRepo.CountAnswerVotes(ctx, answer.ID)
			if err != nil {
				return nil, err
			}
			answerDTOs = append(answerDTOs, &dto.AnswerDTO{
				ID:        answer.ID,
				UserID:    answer.UserID,
				Username:  answer.User.Username,
				Text:      answer.Text,
				Likes:     likes,
				Dislikes:  dislikes,
				CreatedAt: answer.CreatedAt.Format(time.DateTime),
			})
		}
		result = append(result, &dto.QuestionDTO{
			ID:        question.ID,
			UserID:    question.UserID,
			Username:  question.User.Username,
			Text:      question.Text,
			CreatedAt: question.CreatedAt.Format(time.DateTime),
			Answers:   answerDTOs,
		})
	}
	return result, nil
}

func (s *QAServiceImpl) ListPendingQuestions(ctx context.Context, limit, offset int) ([]*dto.PendingContentDTO, error) {
	questions, err := s.qaRepo.ListPendingQuestions(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.PendingContentDTO, 0, len(questions))
	for _, question := range questions {
		result = append(result, &dto.PendingContentDTO{
			ID:          question.ID,
			ContentType: "question",
			ProfessorID: question.ProfessorID,
			UserID:      question.UserID,
			Username:    question.User.Username,
			Text:        question.Text,
			CreatedAt:   question.CreatedAt.Format(time.DateTime),
		})
	}
	return result, nil
}

func (s *QAServiceImpl) ListPendingAnswers(ctx context.Context, limit, offset int) ([]*dto.PendingContentDTO, error) {
	answers, err := s.qaRepo.ListPendingAnswers(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.PendingContentDTO, 0, len(answers))
	for _, answer := range answers {
		result = append(result, &dto.PendingContentDTO{
			ID:          answer.ID,
			ContentType: "answer",
			QuestionID:  answer.QuestionID,
			UserID:      answer.UserID,
			Username:    answer.User.Username,
			Text:        answer.Text,
			CreatedAt:   answer.CreatedAt.Format(time.DateTime),
		})
	}
	return result, nil
}

func (s *QAServiceImpl) ApproveQuestion(ctx context.Context, questionID uint64) error {
	return s.setQuestionApproval(ctx, questionID, true)
}

func (s *QAServiceImpl) RejectQuestion(ctx context.Context, questionID uint64) error {
	return s.setQuestionApproval(ctx, questionID, false)
}

func (s *QAServiceImpl) setQuestionApproval(ctx context.Context, questionID uint64, approved bool) error {
	question, err := s.qaRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}
	return s.qaRepo.UpdateQuestionApproval(ctx, questionID, approved)
}

func (s *QAServiceImpl) DeleteQuestion(ctx context.Context, questionID uint64) error {
	question, err := s.qaRepo.GetQuestionByID(ctx, questionID)
	if err != nil {
		return err
	}
	if question == nil {
		return ErrQuestionNotFound
	}
	return s.qaRepo.DeleteQuestionWithQuota(ctx, question)
}

func (s *QAServiceImpl) ApproveAnswer(ctx context.Context, answerID uint64) error {
	return s.setAnswerApproval(ctx, answerID, true)
}

func (s *QAServiceImpl) RejectAnswer(ctx context.Context, answerID uint64) error {
	return s.setAnswerApproval(ctx, answerID, false)
}

func (s *QAServiceImpl) setAnswerApproval(ctx context.Context, answerID uint64, approved bool) error {
	answer, err := s.qaRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return err
	}
	if answer == nil {
		return ErrAnswerNotFound
	}
	return s.qaRepo.UpdateAnswerApproval(ctx, answerID, approved)
}

func (s *QAServiceImpl) DeleteAnswer(ctx context.Context, answerID uint64) error {
	answer, err := s.qaRepo.GetAnswerByID(ctx, answerID)
	if err != nil {
		return err
	}
	if answer == nil {
		return ErrAnswerNotFound
	}
	return s.qaRepo.DeleteAnswer(ctx, answerID)
}
