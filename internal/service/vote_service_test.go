package service_test

import (
	"context"
	"errors"
	"testing"

	"Lectern/internal/service"
)

func (env *testEnv) createApprovedReview(t *testing.T, userID, professorID uint64, text string) uint64 {
	t.Helper()
	ctx := context.Background()
	result, err := env.reviewSvc.Submit(ctx, userID, professorID, text, 4)
	if err != nil {
		t.Fatalf("review submit failed: %v", err)
	}
	if err = env.reviewSvc.Approve(ctx, result.ContentID); err != nil {
		t.Fatalf("review approve failed: %v", err)
	}
	return result.ContentID
}

func TestVoteToggleOff(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "alice")
	voter := env.createUser(t, "bob")
	professorID := env.createProfessor(t, "Kim", "Computer Science")
	reviewID := env.createApprovedReview(t, author, professorID, "solid course")

	// Given: an upvote is cast
	first, err := env.voteSvc.CastReviewVote(ctx, reviewID, voter, 1)
	if err != nil {
		t.Fatalf("first vote failed: %v", err)
	}
	if first.Likes != 1 || first.MyVote != 1 {
		t.Fatalf("expected likes=1 my_vote=1, got %+v", first)
	}

	// When: the same value is cast again
	second, err := env.voteSvc.CastReviewVote(ctx, reviewID, voter, 1)
	if err != nil {
		t.Fatalf("second vote failed: %v", err)
	}

	// Then: the vote is withdrawn entirely
	if second.Likes != 0 || second.MyVote != 0 {
		t.Errorf("expected vote withdrawn, got %+v", second)
	}
	var rows int64
	env.db.Table("review_votes").Count(&rows)
	if rows != 0 {
		t.Errorf("expected no vote rows, got %d", rows)
	}
}

func TestVoteOverwrite(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "alice")
	voter := env.createUser(t, "bob")
	professorID := env.createProfessor(t, "Kim", "Computer Science")
	reviewID := env.createApprovedReview(t, author, professorID, "solid course")

	// Given: an upvote
	if _, err := env.voteSvc.CastReviewVote(ctx, reviewID, voter, 1); err != nil {
		t.Fatalf("upvote failed: %v", err)
	}

	// When: the opposite value is cast
	result, err := env.voteSvc.CastReviewVote(ctx, reviewID, voter, -1)
	if err != nil {
		t.Fatalf("downvote failed: %v", err)
	}

	// Then: a single row remains holding the new value
	if result.Likes != 0 || result.Dislikes != 1 || result.MyVote != -1 {
		t.Errorf("expected overwrite to dislike, got %+v", result)
	}
	var rows int64
	env.db.Table("review_votes").Count(&rows)
	if rows != 1 {
		t.Errorf("expected exactly one vote row, got %d", rows)
	}
}

func TestVoteCountsPerVoter(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")
	reviewID := env.createApprovedReview(t, author, professorID, "solid course")

	voters := []string{"bob", "carol", "dave"}
	for i, name := range voters {
		voterID := env.createUser(t, name)
		value := int8(1)
		if i == 2 {
			value = -1
		}
		if _, err := env.voteSvc.CastReviewVote(ctx, reviewID, voterID, value); err != nil {
			t.Fatalf("vote by %s failed: %v", name, err)
		}
	}

	result, err := env.voteSvc.CastReviewVote(ctx, reviewID, author, 1)
	if err != nil {
		t.Fatalf("author vote failed: %v", err)
	}
	if result.Likes != 3 || result.Dislikes != 1 {
		t.Errorf("expected likes=3 dislikes=1, got %+v", result)
	}
}

func TestVoteRejectsUnapprovedTarget(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "alice")
	voter := env.createUser(t, "bob")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	result, err := env.reviewSvc.Submit(ctx, author, professorID, "not yet approved", 4)
	if err != nil {
		t.Fatalf("review submit failed: %v", err)
	}

	_, err = env.voteSvc.CastReviewVote(ctx, result.ContentID, voter, 1)
	if !errors.Is(err, service.ErrReviewNotFound) {
		t.Fatalf("expected not found for unapproved review, got %v", err)
	}
}

func TestAnswerVoteToggle(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	asker := env.createUser(t, "alice")
	answerer := env.createUser(t, "bob")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	questionID := env.createApprovedQuestion(t, asker, professorID, "curve or no curve?")
	answer, err := env.qaSvc.SubmitAnswer(ctx, answerer, professorID, questionID, "no curve")
	if err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if err = env.qaSvc.ApproveAnswer(ctx, answer.ContentID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	first, err := env.voteSvc.CastAnswerVote(ctx, answer.ContentID, asker, -1)
	if err != nil {
		t.Fatalf("first answer vote failed: %v", err)
	}
	if first.Dislikes != 1 || first.MyVote != -1 {
		t.Fatalf("expected dislikes=1, got %+v", first)
	}

	second, err := env.voteSvc.CastAnswerVote(ctx, answer.ContentID, asker, -1)
	if err != nil {
		t.Fatalf("second answer vote failed: %v", err)
	}
	if second.Dislikes != 0 || second.MyVote != 0 {
		t.Errorf("expected withdrawn answer vote, got %+v", second)
	}
}
