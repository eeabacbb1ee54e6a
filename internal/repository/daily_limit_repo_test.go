package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"Lectern/internal/model"
	"Lectern/internal/pkg/util"
	"Lectern/internal/repository"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open database connection: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err = db.AutoMigrate(&model.UserDailyLimit{}, &model.Review{}, &model.ReviewVote{}, &model.User{}); err != nil {
		t.Fatalf("could not migrate schema: %v", err)
	}
	return db
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	db := setupRepoDB(t)
	repo := repository.NewDailyLimitRepo(db)
	ctx := context.Background()
	today := util.Today()

	// When: the same user/date pair is requested twice
	first, err := repo.GetOrCreate(ctx, 1, today)
	if err != nil {
		t.Fatalf("first GetOrCreate failed: %v", err)
	}
	second, err := repo.GetOrCreate(ctx, 1, today)
	if err != nil {
		t.Fatalf("second GetOrCreate failed: %v", err)
	}

	// Then: one row exists and both calls see it
	if first.ID != second.ID {
		t.Errorf("expected same row, got %d and %d", first.ID, second.ID)
	}
	var count int64
	db.Table("user_daily_limits").Count(&count)
	if count != 1 {
		t.Errorf("expected 1 counter row, got %d", count)
	}
}

func TestCreateWithQuotaStopsAtLimit(t *testing.T) {
	db := setupRepoDB(t)
	repo := repository.NewReviewRepo(db)
	ctx := context.Background()
	today := util.Today()

	// Given: a limit of 2
	for i := 0; i < 2; i++ {
		review := &model.Review{ProfessorID: 1, UserID: 1, Text: "r", Rating: 3, CreatedAt: time.Now()}
		ok, err := repo.CreateWithQuota(ctx, review, today, 2)
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		if !ok {
			t.Fatalf("create %d should fit the quota", i)
		}
	}

	// When: the limit is reached
	review := &model.Review{ProfessorID: 1, UserID: 1, Text: "r", Rating: 3, CreatedAt: time.Now()}
	ok, err := repo.CreateWithQuota(ctx, review, today, 2)
	if err != nil {
		t.Fatalf("create at limit errored: %v", err)
	}

	// Then: the conditional update refuses and nothing is written
	if ok {
		t.Error("expected create to be refused at the limit")
	}
	var reviews int64
	db.Table("reviews").Count(&reviews)
	if reviews != 2 {
		t.Errorf("expected 2 reviews, got %d", reviews)
	}
	var counter int
	db.Table("user_daily_limits").Where("user_id = ?", 1).Select("review_count").Scan(&counter)
	if counter != 2 {
		t.Errorf("expected counter 2, got %d", counter)
	}
}

func TestDecrementIfPositiveFloorsAtZero(t *testing.T) {
	db := setupRepoDB(t)
	repo := repository.NewDailyLimitRepo(db)
	ctx := context.Background()
	today := util.Today()

	if _, err := repo.GetOrCreate(ctx, 1, today); err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	// When: decrementing a counter that is already zero
	applied, err := repo.DecrementIfPositive(ctx, 1, today, repository.QuotaColumnReview)
	if err != nil {
		t.Fatalf("decrement errored: %v", err)
	}

	// Then: nothing happens, no error, no negative value
	if applied {
		t.Error("expected decrement to be skipped at zero")
	}
	row, err := repo.Get(ctx, 1, today)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if row.ReviewCount != 0 {
		t.Errorf("expected counter 0, got %d", row.ReviewCount)
	}
}

func TestDecrementMissingRowIsTolerated(t *testing.T) {
	db := setupRepoDB(t)
	repo := repository.NewDailyLimitRepo(db)
	ctx := context.Background()

	// When: no counter row exists for the date at all
	applied, err := repo.DecrementIfPositive(ctx, 42, util.Today(), repository.QuotaColumnQuestion)

	// Then: the call is a no-op, never an error
	if err != nil {
		t.Fatalf("decrement on missing row errored: %v", err)
	}
	if applied {
		t.Error("expected no-op on missing row")
	}
}
