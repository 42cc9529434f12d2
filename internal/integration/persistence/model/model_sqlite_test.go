package model

import (
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens a throwaway in-memory database migrated with the given
// models, using the same driver as the integration suite.
func openTestDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestModelTimeColumnsRoundTrip(t *testing.T) {
	due := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	done := time.Date(2026, time.August, 14, 9, 30, 0, 0, time.UTC)

	// Task due and completion times must scan back as time.Time.
	t.Run("task due date and completed at", func(t *testing.T) {
		db := openTestDB(t, &TaskModel{})

		saved := &TaskModel{
			ID:          uuid.New(),
			UserID:      uuid.New(),
			TaskName:    "Hem the gown",
			DueDate:     due,
			Priority:    "High",
			Status:      "Completed",
			CompletedAt: &done,
			CreatedAt:   done,
			UpdatedAt:   done,
		}
		if err := db.Create(saved).Error; err != nil {
			t.Fatalf("create failed: %v", err)
		}

		var got TaskModel
		if err := db.First(&got, "id = ?", saved.ID).Error; err != nil {
			t.Fatalf("read back failed: %v", err)
		}
		if !got.DueDate.Equal(due) {
			t.Errorf("due date = %v, want %v", got.DueDate, due)
		}
		if got.CompletedAt == nil || !got.CompletedAt.Equal(done) {
			t.Errorf("completed at = %v, want %v", got.CompletedAt, done)
		}
	})

	// An order's optional due date survives both the set and unset cases.
	t.Run("order due date", func(t *testing.T) {
		db := openTestDB(t, &OrderModel{})

		withDue := &OrderModel{
			ID:             uuid.New(),
			UserID:         uuid.New(),
			ClientID:       uuid.New(),
			CustomerName:   "Amaka Obi",
			CustomerNumber: "+2348012345678",
			Status:         "Pending",
			Amount:         decimal.NewFromInt(45000),
			AmountPaid:     decimal.Zero,
			DueDate:        &due,
			CreatedAt:      done,
			UpdatedAt:      done,
		}
		withoutDue := &OrderModel{
			ID:             uuid.New(),
			UserID:         withDue.UserID,
			ClientID:       withDue.ClientID,
			CustomerName:   "Tunde Ade",
			CustomerNumber: "+2348098765432",
			Status:         "Pending",
			Amount:         decimal.NewFromInt(12000),
			AmountPaid:     decimal.Zero,
			CreatedAt:      done,
			UpdatedAt:      done,
		}
		if err := db.Create([]*OrderModel{withDue, withoutDue}).Error; err != nil {
			t.Fatalf("create failed: %v", err)
		}

		var got OrderModel
		if err := db.First(&got, "id = ?", withDue.ID).Error; err != nil {
			t.Fatalf("read back failed: %v", err)
		}
		if got.DueDate == nil || !got.DueDate.Equal(due) {
			t.Errorf("due date = %v, want %v", got.DueDate, due)
		}

		var gotWithout OrderModel
		if err := db.First(&gotWithout, "id = ?", withoutDue.ID).Error; err != nil {
			t.Fatalf("read back failed: %v", err)
		}
		if gotWithout.DueDate != nil {
			t.Errorf("due date = %v, want nil", gotWithout.DueDate)
		}
	})

	// ProcessedAt is a NullTime and must round-trip in both states.
	t.Run("email job processed at", func(t *testing.T) {
		db := openTestDB(t, &EmailQueueModel{})

		saved := &EmailQueueModel{
			ID:             uuid.New(),
			TemplateType:   "deadline_reminder",
			RecipientEmail: "ada@example.com",
			Subject:        "Deadlines today",
			TemplateData:   "{}",
			Status:         "sent",
			MaxAttempts:    3,
			CreatedAt:      done,
			ScheduledAt:    done,
			ProcessedAt:    sql.NullTime{Time: due, Valid: true},
		}
		if err := db.Create(saved).Error; err != nil {
			t.Fatalf("create failed: %v", err)
		}

		var got EmailQueueModel
		if err := db.First(&got, "id = ?", saved.ID).Error; err != nil {
			t.Fatalf("read back failed: %v", err)
		}
		if !got.ProcessedAt.Valid || !got.ProcessedAt.Time.Equal(due) {
			t.Errorf("processed at = %v, want %v", got.ProcessedAt, due)
		}
	})
}
