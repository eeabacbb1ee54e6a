package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"Lectern/internal/service"
)

func TestQuestionQuotaIndependentFromReviews(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	// Given: the review quota is fully used
	for i := 0; i < 3; i++ {
		if _, err := env.reviewSvc.Submit(ctx, userID, professorID, fmt.Sprintf("review %d", i), 4); err != nil {
			t.Fatalf("review %d failed: %v", i, err)
		}
	}

	// When/Then: questions still have their own quota of 3
	for i := 0; i < 3; i++ {
		if _, err := env.qaSvc.SubmitQuestion(ctx, userID, professorID, fmt.Sprintf("question %d", i)); err != nil {
			t.Fatalf("question %d failed: %v", i, err)
		}
	}
	_, err := env.qaSvc.SubmitQuestion(ctx, userID, professorID, "question too many")
	if !errors.Is(err, service.ErrQuestionQuotaExceeded) {
		t.Fatalf("expected question quota error, got %v", err)
	}
}

func TestDuplicateQuestionSameDay(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	first, err := env.qaSvc.SubmitQuestion(ctx, userID, professorID, "is attendance mandatory?")
	if err != nil {
		t.Fatalf("first question failed: %v", err)
	}

	second, err := env.qaSvc.SubmitQuestion(ctx, userID, professorID, "is attendance mandatory?")
	if err != nil {
		t.Fatalf("duplicate question should not error: %v", err)
	}
	if !second.Duplicate || second.ContentID != first.ContentID {
		t.Errorf("expected duplicate pointing at %d, got %+v", first.ContentID, second)
	}

	stats, err := env.quotaSvc.DailyStats(ctx, userID)
	if err != nil {
		t.Fatalf("daily stats failed: %v", err)
	}
	if stats.QuestionsUsed != 1 {
		t.Errorf("expected 1 question counted, got %d", stats.QuestionsUsed)
	}
}

func TestAnswersExemptFromQuota(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	asker := env.createUser(t, "alice")
	answerer := env.createUser(t, "bob")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	questionID := env.createApprovedQuestion(t, asker, professorID, "how are exams graded?")

	// When: one user posts well past the daily content limits
	for i := 0; i < 5; i++ {
		if _, err := env.qaSvc.SubmitAnswer(ctx, answerer, professorID, questionID, fmt.Sprintf("answer %d", i)); err != nil {
			t.Fatalf("answer %d failed: %v", i, err)
		}
	}

	// Then: answers never touch the counters
	stats, err := env.quotaSvc.DailyStats(ctx, answerer)
	if err != nil {
		t.Fatalf("daily stats failed: %v", err)
	}
	if stats.ReviewsUsed != 0 || stats.QuestionsUsed != 0 {
		t.Errorf("answers must not consume quota, got %+v", stats)
	}
}

func TestAnswerRequiresExistingQuestion(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	_, err := env.qaSvc.SubmitAnswer(ctx, userID, professorID, 12345, "answer to nothing")
	if !errors.Is(err, service.ErrQuestionNotFound) {
		t.Fatalf("expected question not found, got %v", err)
	}
}

func TestAnswerOnUnapprovedQuestionRejected(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	asker := env.createUser(t, "alice")
	answerer := env.createUser(t, "bob")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	// Given: a question still waiting for moderation
	question, err := env.qaSvc.SubmitQuestion(ctx, asker, professorID, "is attendance mandatory?")
	if err != nil {
		t.Fatalf("question failed: %v", err)
	}

	// Then: it cannot be answered until approved
	_, err = env.qaSvc.SubmitAnswer(ctx, answerer, professorID, question.ContentID, "every week")
	if !errors.Is(err, service.ErrQuestionNotFound) {
		t.Fatalf("expected question not found for unapproved target, got %v", err)
	}
}

func TestAnswerRejectsForeignProfessorQuestion(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	asker := env.createUser(t, "alice")
	answerer := env.createUser(t, "bob")
	professorID := env.createProfessor(t, "Kim", "Computer Science")
	otherProfessorID := env.createProfessor(t, "Curie", "Physics")

	questionID := env.createApprovedQuestion(t, asker, professorID, "lab heavy?")

	// Then: the question must belong to the professor in the request path
	_, err := env.qaSvc.SubmitAnswer(ctx, answerer, otherProfessorID, questionID, "very")
	if !errors.Is(err, service.ErrQuestionNotFound) {
		t.Fatalf("expected question not found across professors, got %v", err)
	}
}

func TestDuplicateAnswerSameDay(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	asker := env.createUser(t, "alice")
	answerer := env.createUser(t, "bob")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	questionID := env.createApprovedQuestion(t, asker, professorID, "curve or no curve?")

	first, err := env.qaSvc.SubmitAnswer(ctx, answerer, professorID, questionID, "no curve at all")
	if err != nil {
		t.Fatalf("first answer failed: %v", err)
	}

	// When: the same text is answered again on the same day
	second, err := env.qaSvc.SubmitAnswer(ctx, answerer, professorID, questionID, "no curve at all")
	if err != nil {
		t.Fatalf("duplicate answer errored: %v", err)
	}

	// Then: a warning pointing at the original row, and no second row
	if !second.Duplicate {
		t.Error("expected duplicate flag on same-day identical answer")
	}
	if second.ContentID != first.ContentID {
		t.Errorf("expected the original answer id %d, got %d", first.ContentID, second.ContentID)
	}
	var rows int64
	env.db.Table("answers").Count(&rows)
	if rows != 1 {
		t.Errorf("expected a single answer row, got %d", rows)
	}
}

func TestDeleteQuestionCascadesAnswers(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	asker := env.createUser(t, "alice")
	answerer := env.createUser(t, "bob")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	questionID := env.createApprovedQuestion(t, asker, professorID, "a doomed question")
	answer, err := env.qaSvc.SubmitAnswer(ctx, answerer, professorID, questionID, "a doomed answer")
	if err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if err = env.qaSvc.ApproveAnswer(ctx, answer.ContentID); err != nil {
		t.Fatalf("approve answer failed: %v", err)
	}
	if _, err = env.voteSvc.CastAnswerVote(ctx, answer.ContentID, asker, 1); err != nil {
		t.Fatalf("vote failed: %v", err)
	}

	// When: the question is removed by moderation
	if err = env.qaSvc.DeleteQuestion(ctx, questionID); err != nil {
		t.Fatalf("delete question failed: %v", err)
	}

	// Then: answers and their votes go with it, and the counter steps back
	var answers, votes int64
	env.db.Table("answers").Count(&answers)
	env.db.Table("answer_votes").Count(&votes)
	if answers != 0 || votes != 0 {
		t.Errorf("expected full cascade, answers=%d votes=%d", answers, votes)
	}

	stats, err := env.quotaSvc.DailyStats(ctx, asker)
	if err != nil {
		t.Fatalf("daily stats failed: %v", err)
	}
	if stats.QuestionsUsed != 0 {
		t.Errorf("expected question counter back to 0, got %d", stats.QuestionsUsed)
	}
}
