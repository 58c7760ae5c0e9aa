package repository

import (
	"testing"

	"hospital-admin-backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	// One connection so every query sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Appointment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newAppointmentRepo(db *gorm.DB) *ResourceRepository[models.Appointment] {
	return NewResourceRepo[models.Appointment](db, "appointment_id", "appointment_date DESC")
}

func seedAppointments(t *testing.T, repo *ResourceRepository[models.Appointment]) {
	t.Helper()
	for _, a := range []models.Appointment{
		{PatientID: 1, DoctorID: 1, AppointmentDate: "2025-01-10", AppointmentTime: "09:00", Status: "scheduled"},
		{PatientID: 2, DoctorID: 1, AppointmentDate: "2025-03-05", AppointmentTime: "10:00", Status: "scheduled"},
		{PatientID: 3, DoctorID: 2, AppointmentDate: "2025-02-20", AppointmentTime: "11:30", Status: "completed"},
	} {
		rec := a
		if err := repo.Create(&rec); err != nil {
			t.Fatalf("seed create: %v", err)
		}
	}
}

func TestListAllOrdersByConfiguredColumnDescending(t *testing.T) {
	repo := newAppointmentRepo(newTestDB(t))
	seedAppointments(t, repo)

	rows, err := repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	got := []string{rows[0].AppointmentDate, rows[1].AppointmentDate, rows[2].AppointmentDate}
	want := []string{"2025-03-05", "2025-02-20", "2025-01-10"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d date = %s, want %s (order %v)", i, got[i], want[i], got)
		}
	}
}

func TestListAllEmptyTableReturnsNonNilSlice(t *testing.T) {
	repo := newAppointmentRepo(newTestDB(t))

	rows, err := repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if rows == nil {
		t.Fatal("rows is nil, want empty slice")
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestCreateBackfillsAssignedID(t *testing.T) {
	repo := newAppointmentRepo(newTestDB(t))

	rec := models.Appointment{PatientID: 1, DoctorID: 1, AppointmentDate: "2025-04-01"}
	if err := repo.Create(&rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.AppointmentID == 0 {
		t.Error("AppointmentID not backfilled")
	}
}

func TestFindByIDMissingReturnsEmptySlice(t *testing.T) {
	repo := newAppointmentRepo(newTestDB(t))
	seedAppointments(t, repo)

	rows, err := repo.FindByID(99)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("rows = %v, want empty non-nil slice", rows)
	}
}

func TestUpdateReplacesAllColumnsExceptID(t *testing.T) {
	repo := newAppointmentRepo(newTestDB(t))

	rec := models.Appointment{
		PatientID: 1, DoctorID: 2,
		AppointmentDate: "2025-04-01", AppointmentTime: "09:00",
		Status: "scheduled", Reason: "Checkup",
	}
	if err := repo.Create(&rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	id := int(rec.AppointmentID)

	replacement := models.Appointment{
		PatientID: 1, DoctorID: 2,
		AppointmentDate: "2025-04-08", AppointmentTime: "14:00",
	}
	if err := repo.Update(id, replacement); err != nil {
		t.Fatalf("Update: %v", err)
	}

	rows, err := repo.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	got := rows[0]
	if int(got.AppointmentID) != id {
		t.Errorf("id changed to %d", got.AppointmentID)
	}
	if got.AppointmentDate != "2025-04-08" || got.AppointmentTime != "14:00" {
		t.Errorf("date/time = %s %s, want replaced values", got.AppointmentDate, got.AppointmentTime)
	}
	if got.Status != "" || got.Reason != "" {
		t.Errorf("status = %q reason = %q, want zeroed by full replace", got.Status, got.Reason)
	}
}

func TestDeleteMissingIDIsNotAnError(t *testing.T) {
	repo := newAppointmentRepo(newTestDB(t))

	if err := repo.Delete(42); err != nil {
		t.Errorf("Delete: %v", err)
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	repo := newAppointmentRepo(newTestDB(t))
	seedAppointments(t, repo)

	if err := repo.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	rows, err := repo.FindByID(1)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows after delete, want 0", len(rows))
	}
}
