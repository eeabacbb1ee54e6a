package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"Lectern/internal/service"
)

func TestReviewQuotaLimit(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	// Given: the daily review limit is 3
	for i := 0; i < 3; i++ {
		result, err := env.reviewSvc.Submit(ctx, userID, professorID, fmt.Sprintf("review number %d", i), 4)
		if err != nil {
			t.Fatalf("submission %d failed: %v", i, err)
		}
		if result.Duplicate {
			t.Fatalf("submission %d unexpectedly flagged duplicate", i)
		}
	}

	// When: a fourth distinct review is submitted the same day
	_, err := env.reviewSvc.Submit(ctx, userID, professorID, "one review too many", 4)

	// Then: it is rejected with the quota error and no row is written
	if !errors.Is(err, service.ErrReviewQuotaExceeded) {
		t.Fatalf("expected quota error, got %v", err)
	}
	var count int64
	env.db.Table("reviews").Count(&count)
	if count != 3 {
		t.Errorf("expected 3 reviews stored, got %d", count)
	}
}

func TestReviewQuotaIsPerUser(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	// Given: alice has used her whole quota
	for i := 0; i < 3; i++ {
		if _, err := env.reviewSvc.Submit(ctx, alice, professorID, fmt.Sprintf("alice review %d", i), 3); err != nil {
			t.Fatalf("alice submission %d failed: %v", i, err)
		}
	}

	// When/Then: bob's quota is untouched
	if _, err := env.reviewSvc.Submit(ctx, bob, professorID, "bob review", 5); err != nil {
		t.Fatalf("bob submission failed: %v", err)
	}
}

func TestDuplicateReviewSameDay(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	// Given: a review submitted today
	first, err := env.reviewSvc.Submit(ctx, userID, professorID, "great lectures", 5)
	if err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	// When: the exact same text and rating is submitted again the same day
	second, err := env.reviewSvc.Submit(ctx, userID, professorID, "great lectures", 5)

	// Then: it is treated as a double click, not an error, and consumes nothing
	if err != nil {
		t.Fatalf("duplicate submission should not error: %v", err)
	}
	if !second.Duplicate {
		t.Error("expected duplicate flag on second submission")
	}
	if second.ContentID != first.ContentID {
		t.Errorf("duplicate should point at existing review %d, got %d", first.ContentID, second.ContentID)
	}

	stats, err := env.quotaSvc.DailyStats(ctx, userID)
	if err != nil {
		t.Fatalf("daily stats failed: %v", err)
	}
	if stats.ReviewsUsed != 1 {
		t.Errorf("expected 1 review counted, got %d", stats.ReviewsUsed)
	}
}

func TestDeleteReviewRestoresQuota(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	// Given: the quota is fully used
	var lastID uint64
	for i := 0; i < 3; i++ {
		result, err := env.reviewSvc.Submit(ctx, userID, professorID, fmt.Sprintf("review %d", i), 4)
		if err != nil {
			t.Fatalf("submission %d failed: %v", i, err)
		}
		lastID = result.ContentID
	}

	// When: a moderator deletes one of today's reviews
	if err := env.reviewSvc.Delete(ctx, lastID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// Then: the user can submit one more review today
	if _, err := env.reviewSvc.Submit(ctx, userID, professorID, "a fresh take", 4); err != nil {
		t.Fatalf("submission after delete failed: %v", err)
	}
}

func TestDeleteReviewCounterFloorsAtZero(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	result, err := env.reviewSvc.Submit(ctx, userID, professorID, "review", 4)
	if err != nil {
		t.Fatalf("submission failed: %v", err)
	}

	// Given: the counter row was already reset to zero out of band
	env.db.Table("user_daily_limits").Where("user_id = ?", userID).Update("review_count", 0)

	// When: the review is deleted anyway
	if err = env.reviewSvc.Delete(ctx, result.ContentID); err != nil {
		t.Fatalf("delete must tolerate a zero counter: %v", err)
	}

	// Then: the counter does not go negative
	var reviewCount int
	env.db.Table("user_daily_limits").Where("user_id = ?", userID).Select("review_count").Scan(&reviewCount)
	if reviewCount != 0 {
		t.Errorf("expected counter 0, got %d", reviewCount)
	}
}

func TestApprovalGate(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	result, err := env.reviewSvc.Submit(ctx, userID, professorID, "waiting for approval", 4)
	if err != nil {
		t.Fatalf("submission failed: %v", err)
	}

	// Given: a freshly submitted review is unapproved by default
	visible, err := env.reviewSvc.ListApprovedByProfessor(ctx, professorID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(visible) != 0 {
		t.Fatalf("unapproved review must not be visible, got %d", len(visible))
	}

	// When: a moderator approves it
	if err = env.reviewSvc.Approve(ctx, result.ContentID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	// Then: it shows up publicly
	visible, err = env.reviewSvc.ListApprovedByProfessor(ctx, professorID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(visible) != 1 {
		t.Fatalf("expected 1 visible review, got %d", len(visible))
	}
	if visible[0].Username != "alice" {
		t.Errorf("expected author alice, got %s", visible[0].Username)
	}
}

func TestRatingOutOfRangeRejected(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	userID := env.createUser(t, "alice")
	professorID := env.createProfessor(t, "Kim", "Computer Science")

	for _, rating := range []uint8{0, 6} {
		_, err := env.reviewSvc.Submit(ctx, userID, professorID, "bad rating", rating)
		if !errors.Is(err, service.ErrRatingOutOfRange) {
			t.Errorf("rating %d: expected range error, got %v", rating, err)
		}
	}
}
