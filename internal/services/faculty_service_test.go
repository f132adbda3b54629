package services

import (
	"testing"

	"tutorhub-service/internal/models"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfileRepeatable(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewFacultyService(testDB)

	testDB.Create(&models.Faculty{ID: 801, FullName: "Jane Tutor", Email: "jane.profile@example.com"})

	payload := UpdateProfileDTO{
		FullName: strPtr("Jane Tutor"),
		Title:    strPtr("Senior Mathematics Tutor"),
		Bio:      strPtr("Fifteen years of algebra."),
	}

	profile, err := svc.UpdateProfile(801, payload)
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if profile.Title != "Senior Mathematics Tutor" {
		t.Errorf("Expected title applied, got %q", profile.Title)
	}

	// Same payload again: unchanged values must not be mistaken for a
	// missing row and must not create a duplicate profile.
	if _, err := svc.UpdateProfile(801, payload); err != nil {
		t.Fatalf("Re-submitting an unchanged profile failed: %v", err)
	}

	var count int64
	testDB.Model(&models.FacultyProfile{}).Where("faculty_id = ?", 801).Count(&count)
	if count != 1 {
		t.Errorf("Expected a single profile row, got %d", count)
	}

	if _, err := svc.UpdateProfile(99999, UpdateProfileDTO{FullName: strPtr("Ghost")}); err != ErrFacultyNotFound {
		t.Errorf("Expected ErrFacultyNotFound, got %v", err)
	}
}

func TestPayoutSnapshot(t *testing.T) {
	if testDB == nil {
		t.Skip("Database not configured")
	}
	defer cleanup()

	svc := NewFacultyService(testDB)

	testDB.Create(&models.FacultyProfile{
		FacultyId:    802,
		PayoutMethod: models.PayoutMethodPaypal,
		PaypalEmail:  "payout@example.com",
	})

	snapshot, err := svc.PayoutSnapshot(802)
	if err != nil {
		t.Fatalf("PayoutSnapshot failed: %v", err)
	}
	if snapshot.Method != models.PayoutMethodPaypal || snapshot.PaypalEmail != "payout@example.com" {
		t.Errorf("Unexpected snapshot: %+v", snapshot)
	}
	if err := snapshot.Validate(); err != nil {
		t.Errorf("Expected a valid snapshot, got %v", err)
	}

	if _, err := svc.PayoutSnapshot(99999); err != ErrFacultyNotFound {
		t.Errorf("Expected ErrFacultyNotFound for missing profile, got %v", err)
	}
}
