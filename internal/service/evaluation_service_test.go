package service_test

import (
	"context"
	"errors"
	"testing"

	"Lectern/internal/api/dto"
	"Lectern/internal/service"
)

func TestEvaluationDefaultsToThree(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	// Given: only one dimension filled in
	err := env.evaluationSvc.Submit(ctx, professorID, userID, &dto.EvaluationDTO{
		TeachingMethod: 5,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// Then: untouched dimensions fall back to the neutral default
	mine, err := env.evaluationSvc.GetMine(ctx, professorID, userID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if mine.TeachingMethod != 5 {
		t.Errorf("expected teaching_method=5, got %d", mine.TeachingMethod)
	}
	for name, v := range map[string]uint8{
		"grading_flexibility": mine.GradingFlexibility,
		"exam_difficulty":     mine.ExamDifficulty,
		"subject_knowledge":   mine.SubjectKnowledge,
		"respect":             mine.Respect,
		"student_interaction": mine.StudentInteraction,
	} {
		if v != 3 {
			t.Errorf("expected %s=3, got %d", name, v)
		}
	}
}

func TestEvaluationUpsertKeepsOneRow(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	// Given: a first evaluation
	err := env.evaluationSvc.Submit(ctx, professorID, userID, &dto.EvaluationDTO{
		TeachingMethod: 2, GradingFlexibility: 2, ExamDifficulty: 2,
		SubjectKnowledge: 2, Respect: 2, StudentInteraction: 2,
	})
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	// When: the same user evaluates the same professor again
	err = env.evaluationSvc.Submit(ctx, professorID, userID, &dto.EvaluationDTO{
		TeachingMethod: 5, GradingFlexibility: 5, ExamDifficulty: 5,
		SubjectKnowledge: 5, Respect: 5, StudentInteraction: 5,
	})
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	// Then: the old row is overwritten, never duplicated
	var rows int64
	env.db.Table("professor_evaluations").Count(&rows)
	if rows != 1 {
		t.Fatalf("expected a single evaluation row, got %d", rows)
	}
	mine, err := env.evaluationSvc.GetMine(ctx, professorID, userID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if mine.TeachingMethod != 5 {
		t.Errorf("expected overwritten value 5, got %d", mine.TeachingMethod)
	}
}

func TestEvaluationScoreOutOfRange(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	err := env.evaluationSvc.Submit(ctx, professorID, userID, &dto.EvaluationDTO{
		TeachingMethod: 6,
	})
	if !errors.Is(err, service.ErrScoreOutOfRange) {
		t.Fatalf("expected score range error, got %v", err)
	}
}

func TestEvaluationSummaryRounding(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	// Given: one evaluation scoring [4,4,3,5,5,4]
	err := env.evaluationSvc.Submit(ctx, professorID, userID, &dto.EvaluationDTO{
		TeachingMethod:     4,
		GradingFlexibility: 4,
		ExamDifficulty:     3,
		SubjectKnowledge:   5,
		Respect:            5,
		StudentInteraction: 4,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// Then: the overall mean 25/6 rounds to 4.2
	summary, err := env.evaluationSvc.Summary(ctx, professorID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Overall != 4.2 {
		t.Errorf("expected overall 4.2, got %v", summary.Overall)
	}
	if summary.Count != 1 {
		t.Errorf("expected count 1, got %d", summary.Count)
	}

	// And: the user's own row carries the same per-row average
	mine, err := env.evaluationSvc.GetMine(ctx, professorID, userID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if mine.AverageScore != 4.2 {
		t.Errorf("expected per-row average 4.2, got %v", mine.AverageScore)
	}
}

func TestEvaluationSummaryPerDimension(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	// Given: two users disagree on teaching method, everything else defaults
	err := env.evaluationSvc.Submit(ctx, professorID, alice, &dto.EvaluationDTO{TeachingMethod: 5})
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	err = env.evaluationSvc.Submit(ctx, professorID, bob, &dto.EvaluationDTO{TeachingMethod: 2})
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	summary, err := env.evaluationSvc.Summary(ctx, professorID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	// Then: each dimension reports mean, sample count and the raw values
	tm := summary.TeachingMethod
	if tm.Average != 3.5 {
		t.Errorf("expected teaching_method average 3.5, got %v", tm.Average)
	}
	if tm.Count != 2 {
		t.Errorf("expected teaching_method count 2, got %d", tm.Count)
	}
	if len(tm.Values) != 2 {
		t.Fatalf("expected 2 raw values, got %v", tm.Values)
	}
	seen := map[uint8]bool{}
	for _, v := range tm.Values {
		seen[v] = true
	}
	if !seen[5] || !seen[2] {
		t.Errorf("expected raw values {5,2}, got %v", tm.Values)
	}

	respect := summary.Respect
	if respect.Average != 3 || respect.Count != 2 || len(respect.Values) != 2 {
		t.Errorf("expected defaulted respect stats {3, 2, [3 3]}, got %+v", respect)
	}
}

func TestEvaluationSummaryEmpty(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	professorID := env.createProfessor(t, "Kim", "Computer Science")

	summary, err := env.evaluationSvc.Summary(ctx, professorID)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary != nil {
		t.Errorf("expected nil summary with no evaluations, got %+v", summary)
	}
}
