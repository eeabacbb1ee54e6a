package service

import (
	"Lectern/internal/api/dto"
	"Lectern/internal/model"
	"Lectern/internal/pkg/consts"
	"Lectern/internal/pkg/util"
	"Lectern/internal/repository"
	"context"
)

type EvaluationService interface {
	// Submit 每个用户对每位教授一份打分，重复提交覆盖旧值
	Submit(ctx context.Context, professorID, userID uint64, evalDTO *dto.EvaluationDTO) error
	GetMine(ctx context.Context, professorID, userID uint64) (*dto.MyEvaluationDTO, error)
	Summary(ctx context.Context, professorID uint64) (*dto.EvaluationSummaryDTO, error)
}

type EvaluationServiceImpl struct {
	evaluationRepo repository.EvaluationRepo
	professorRepo  repository.ProfessorRepo
}

func NewEvaluationService(evaluationRepo repository.EvaluationRepo, professorRepo repository.ProfessorRepo) EvaluationService {
	return &EvaluationServiceImpl{
		evaluationRepo: evaluationRepo,
		professorRepo:  professorRepo,
	}
}

// normalizeScore 未填维度取默认分 3
func normalizeScore(v uint8) (uint8, error) {
	if v == 0 {
		return consts.EvaluationScoreDefault, nil
	}
	if v < consts.EvaluationScoreMin || v > consts.EvaluationScoreMax {
		return 0, ErrScoreOutOfRange
	}
	return v, nil
}

func (s *EvaluationServiceImpl) Submit(ctx context.Context, professorID, userID uint64, evalDTO *dto.EvaluationDTO) error {
	professor, err := s.professorRepo.GetByID(ctx, professorID)
	if err != nil {
		return err
	}
	if professor == nil {
		return ErrProfessorNotFound
	}

	eval := &model.ProfessorEvaluation{
		ProfessorID: professorID,
		UserID:      userID,
	}
	scores := []struct {
		in  uint8
		out *uint8
	}{
		{evalDTO.TeachingMethod, &eval.TeachingMethod},
		{evalDTO.GradingFlexibility, &eval.GradingFlexibility},
		{evalDTO.ExamDifficulty, &eval.ExamDifficulty},
		{evalDTO.SubjectKnowledge, &eval.SubjectKnowledge},
		{evalDTO.Respect, &eval.Respect},
		{evalDTO.StudentInteraction, &eval.StudentInteraction},
	}
	for _, sc := range scores {
		v, err := normalizeScore(sc.in)
		if err != nil {
			return err
		}
		*sc.out = v
	}

	return s.evaluationRepo.Upsert(ctx, eval)
}

func (s *EvaluationServiceImpl) GetMine(ctx context.Context, professorID, userID uint64) (*dto.MyEvaluationDTO, error) {
	eval, err := s.evaluationRepo.GetByProfessorAndUser(ctx, professorID, userID)
	if err != nil {
		return nil, err
	}
	if eval == nil {
		return nil, nil
	}
	var sum float64
	for _, score := range eval.Scores() {
		sum += float64(score)
	}
	return &dto.MyEvaluationDTO{
		EvaluationDTO: dto.EvaluationDTO{
			TeachingMethod:     eval.TeachingMethod,
			GradingFlexibility: eval.GradingFlexibility,
			ExamDifficulty:     eval.ExamDifficulty,
			SubjectKnowledge:   eval.SubjectKnowledge,
			Respect:            eval.Respect,
			StudentInteraction: eval.StudentInteraction,
		},
		AverageScore: util.Round1(sum / consts.EvaluationDimensionCount),
	}, nil
}

// Summary 逐维度给出均值、样本数和原始分值列表，均值保留一位小数，无人打分时返回 nil
func (s *EvaluationServiceImpl) Summary(ctx context.Context, professorID uint64) (*dto.EvaluationSummaryDTO, error) {
	evals, err := s.evaluationRepo.ListByProfessor(ctx, professorID)
	if err != nil {
		return nil, err
	}
	if len(evals) == 0 {
		return nil, nil
	}

	var sums [consts.EvaluationDimensionCount]float64
	var values [consts.EvaluationDimensionCount][]uint8
	for _, eval := range evals {
		for i, score := range eval.Scores() {
			sums[i] += float64(score)
			values[i] = append(values[i], score)
		}
	}

	n := float64(len(evals))
	var total float64
	var dims [consts.EvaluationDimensionCount]dto.DimensionStatDTO
	for i, sum := range sums {
		dims[i] = dto.DimensionStatDTO{
			Average: util.Round1(sum / n),
			Count:   int64(len(evals)),
			Values:  values[i],
		}
		total += sum
	}

	return &dto.EvaluationSummaryDTO{
		TeachingMethod:     dims[0],
		GradingFlexibility: dims[1],
		ExamDifficulty:     dims[2],
		SubjectKnowledge:   dims[3],
		Respect:            dims[4],
		StudentInteraction: dims[5],
		Overall:            util.Round1(total / (n * consts.EvaluationDimensionCount)),
		Count:              int64(len(evals)),
	}, nil
}
