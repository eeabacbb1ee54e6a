package service

import (
	"Lectern/internal/api/dto"
	"Lectern/internal/model"
	"Lectern/internal/pkg/consts"
	"Lectern/internal/pkg/minio"
	"Lectern/internal/pkg/util"
	"Lectern/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type ProfessorService interface {
	List(ctx context.Context, query string) ([]*dto.ProfessorDTO, error)
	// Detail 并发装配评价、问答和六维打分汇总
	Detail(ctx context.Context, professorID uint64) (*dto.ProfessorDetailDTO, error)
	Create(ctx context.Context, baseDTO *dto.ProfessorBaseDTO) (uint64, error)
	Update(ctx context.Context, professorID uint64, baseDTO *dto.ProfessorBaseDTO) error
	Delete(ctx context.Context, professorID uint64) error
}

type ProfessorServiceImpl struct {
	professorRepo     repository.ProfessorRepo
	reviewRepo        repository.ReviewRepo
	reviewService     ReviewService
	qaService         QAService
	evaluationService EvaluationService
}

func NewProfessorService(
	professorRepo repository.ProfessorRepo,
	reviewRepo repository.ReviewRepo,
	reviewService ReviewService,
	qaService QAService,
	evaluationService EvaluationService,
) ProfessorService {
	return &ProfessorServiceImpl{
		professorRepo:     professorRepo,
		reviewRepo:        reviewRepo,
		reviewService:     reviewService,
		qaService:         qaService,
		evaluationService: evaluationService,
	}
}

func (s *ProfessorServiceImpl) List(ctx context.Context, query string) ([]*dto.ProfessorDTO, error) {
	var professors []*model.Professor
	var err error
	if query == "" {
		professors, err = s.professorRepo.List(ctx)
	} else {
		professors, err = s.professorRepo.Search(ctx, query)
	}
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProfessorDTO, 0, len(professors))
	for _, professor := range professors {
		count, avg, err := s.reviewRepo.ApprovedRatingStats(ctx, professor.ID)
		if err != nil {
			return nil, err
		}
		item := &dto.ProfessorDTO{
			ID:          professor.ID,
			Name:        professor.Name,
			Department:  professor.Department,
			ImageURL:    professor.ImageURL,
			ReviewCount: count,
		}
		if count > 0 {
			rounded := util.Round1(avg)
			item.AverageRating = &rounded
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *ProfessorServiceImpl) Detail(ctx context.Context, professorID uint64) (*dto.ProfessorDetailDTO, error) {
	professor, err := s.professorRepo.GetByID(ctx, professorID)
	if err != nil {
		return nil, err
	}
	if professor == nil {
		return nil, ErrProfessorNotFound
	}

	detail := &dto.ProfessorDetailDTO{
		ID:         professor.ID,
		Name:       professor.Name,
		Department: professor.Department,
		Bio:        professor.Bio,
		ImageURL:   professor.ImageURL,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reviews, err := s.reviewService.ListApprovedByProfessor(gCtx, professorID)
		if err != nil {
			return err
		}
		detail.Reviews = reviews
		return nil
	})
	g.Go(func() error {
		count, avg, err := s.reviewRepo.ApprovedRatingStats(gCtx, professorID)
		if err != nil {
			return err
		}
		if count > 0 {
			rounded := util.Round1(avg)
			detail.AverageRating = &rounded
		}
		return nil
	})
	g.Go(func() error {
		questions, err := s.qaService.ListApprovedByProfessor(gCtx, professorID)
		if err != nil {
			return err
		}
		detail.Questions = questions
		return nil
	})
	g.Go(func() error {
		summary, err := s.evaluationService.Summary(gCtx, professorID)
		if err != nil {
			return err
		}
		detail.Evaluation = summary
		return nil
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

func (s *ProfessorServiceImpl) Create(ctx context.Context, baseDTO *dto.ProfessorBaseDTO) (uint64, error) {
	professor := &model.Professor{}
	if err := copier.Copy(professor, baseDTO); err != nil {
		return 0, err
	}
	if professor.ImageURL == "" {
		professor.ImageURL = consts.DefaultProfessorImage
	}
	if err := s.professorRepo.Create(ctx, professor); err != nil {
		return 0, err
	}
	return professor.ID, nil
}

func (s *ProfessorServiceImpl) Update(ctx context.Context, professorID uint64, baseDTO *dto.ProfessorBaseDTO) error {
	professor, err := s.professorRepo.GetByID(ctx, professorID)
	if err != nil {
		return err
	}
	if professor == nil {
		return ErrProfessorNotFound
	}
	oldImage := professor.ImageURL
	if err = copier.Copy(professor, baseDTO); err != nil {
		return err
	}
	if err = s.professorRepo.Update(ctx, professor); err != nil {
		return err
	}
	if professor.ImageURL != oldImage {
		removeImageObject(ctx, oldImage)
	}
	return nil
}

func (s *ProfessorServiceImpl) Delete(ctx context.Context, professorID uint64) error {
	professor, err := s.professorRepo.GetByID(ctx, professorID)
	if err != nil {
		return err
	}
	if professor == nil {
		return ErrProfessorNotFound
	}
	// 级联删除不回退配额计数，留给对账任务统一纠偏
	if err = s.professorRepo.DeleteCascade(ctx, professorID); err != nil {
		return err
	}
	removeImageObject(ctx, professor.ImageURL)
	return nil
}

// removeImageObject 尽力清理教师头像对象，失败仅记录日志
func removeImageObject(ctx context.Context, objectName string) {
	if objectName == "" || objectName == consts.DefaultProfessorImage {
		return
	}
	if err := minio.DeleteFile(ctx, objectName); err != nil {
		log.WarnContext(ctx, "Failed to remove professor image object", "object", objectName, "error", err)
	}
}
