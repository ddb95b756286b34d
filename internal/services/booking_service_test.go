package services

import (
	"errors"
	"strings"
	"testing"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

type recordingMailService struct {
	confirmations []db_models.Booking
	resets        []string
	err           error
}

func (m *recordingMailService) SendBookingConfirmation(b db_models.Booking) error {
	m.confirmations = append(m.confirmations, b)
	return m.err
}

func (m *recordingMailService) SendPasswordReset(email, _ string) error {
	m.resets = append(m.resets, email)
	return m.err
}

func validBookingRequest(bookingType string) request_models.CreateBookingRequest {
	return request_models.CreateBookingRequest{
		Type:          bookingType,
		CustomerName:  "Asha Nair",
		CustomerEmail: "asha@example.com",
		ItemID:        "pkg-1",
		ItemName:      "Kerala Backwaters",
		TravelDate:    "2026-10-01",
		Travelers:     2,
		TotalAmount:   45000,
	}
}

func TestCreateBookingIDPrefixes(t *testing.T) {
	tests := []struct {
		bookingType string
		prefix      string
	}{
		{"Package", "BK-"},
		{"Taxi", "TX-"},
		{"AI Plan", "AI-"},
		{"General", "GE-"},
	}

	for _, tt := range tests {
		t.Run(tt.bookingType, func(t *testing.T) {
			svc := NewBookingService(newTestStore(), nil)

			booking, err := svc.CreateBooking(validBookingRequest(tt.bookingType))
			if err != nil {
				t.Fatalf("CreateBooking: %v", err)
			}
			if !strings.HasPrefix(booking.ID, tt.prefix) {
				t.Errorf("id = %q, want prefix %q", booking.ID, tt.prefix)
			}
			if booking.Status != db_models.BookingPending {
				t.Errorf("status = %q, want Pending", booking.Status)
			}
			if booking.Date == "" {
				t.Error("date not set")
			}
		})
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := NewBookingService(newTestStore(), nil)

	tests := []struct {
		name   string
		mutate func(*request_models.CreateBookingRequest)
	}{
		{"unknown type", func(r *request_models.CreateBookingRequest) { r.Type = "Cruise" }},
		{"blank name", func(r *request_models.CreateBookingRequest) { r.CustomerName = "  " }},
		{"blank email", func(r *request_models.CreateBookingRequest) { r.CustomerEmail = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest("Package")
			tt.mutate(&req)
			if _, err := svc.CreateBooking(req); !errors.Is(err, utils.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCreateBookingRecordsActivity(t *testing.T) {
	s := newTestStore()
	svc := NewBookingService(s, nil)

	if _, err := svc.CreateBooking(validBookingRequest("Package")); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	entries := s.Activity.List()
	if len(entries) != 1 {
		t.Fatalf("activity entries = %d, want 1", len(entries))
	}
	if entries[0].ActorName != "Customer" || entries[0].TargetType != db_models.TargetBooking {
		t.Errorf("entry = %+v", entries[0])
	}
}

func TestUpdateBookingStatusSendsConfirmation(t *testing.T) {
	s := newTestStore()
	mail := &recordingMailService{}
	svc := NewBookingService(s, mail)

	booking, err := svc.CreateBooking(validBookingRequest("Package"))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	updated, err := svc.UpdateBookingStatus("admin@voyago.test", booking.ID, db_models.BookingConfirmed)
	if err != nil {
		t.Fatalf("UpdateBookingStatus: %v", err)
	}
	if updated.Status != db_models.BookingConfirmed {
		t.Errorf("status = %q, want Confirmed", updated.Status)
	}
	if len(mail.confirmations) != 1 || mail.confirmations[0].ID != booking.ID {
		t.Errorf("confirmations = %+v", mail.confirmations)
	}
}

func TestUpdateBookingStatusMailFailureIsNonFatal(t *testing.T) {
	s := newTestStore()
	mail := &recordingMailService{err: errors.New("smtp down")}
	svc := NewBookingService(s, mail)

	booking, _ := svc.CreateBooking(validBookingRequest("Package"))

	if _, err := svc.UpdateBookingStatus("Admin", booking.ID, db_models.BookingConfirmed); err != nil {
		t.Fatalf("mail failure should not fail the status change: %v", err)
	}

	stored, _ := s.Bookings.Get(booking.ID)
	if stored.Status != db_models.BookingConfirmed {
		t.Errorf("stored status = %q, want Confirmed", stored.Status)
	}
}

func TestUpdateBookingStatusRejectsIllegalTransition(t *testing.T) {
	s := newTestStore()
	svc := NewBookingService(s, nil)

	booking, _ := svc.CreateBooking(validBookingRequest("Package"))
	if _, err := svc.UpdateBookingStatus("Admin", booking.ID, db_models.BookingCancelled); err != nil {
		t.Fatalf("Pending -> Cancelled: %v", err)
	}

	if _, err := svc.UpdateBookingStatus("Admin", booking.ID, db_models.BookingConfirmed); !errors.Is(err, utils.ErrInvalidTransition) {
		t.Errorf("Cancelled -> Confirmed err = %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	svc := NewBookingService(newTestStore(), nil)

	if _, err := svc.UpdateBookingStatus("Admin", "BK-missing", db_models.BookingConfirmed); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMarkBookingPaid(t *testing.T) {
	s := newTestStore()
	svc := NewBookingService(s, nil)

	booking, _ := svc.CreateBooking(validBookingRequest("Package"))

	updated, err := svc.MarkBookingPaid("Admin", booking.ID, true)
	if err != nil {
		t.Fatalf("MarkBookingPaid: %v", err)
	}
	if !updated.Paid {
		t.Error("booking not marked paid")
	}
	if updated.Status != db_models.BookingPending {
		t.Errorf("payment must not change status, got %q", updated.Status)
	}
}

func TestDeleteBooking(t *testing.T) {
	s := newTestStore()
	svc := NewBookingService(s, nil)

	booking, _ := svc.CreateBooking(validBookingRequest("Taxi"))

	if err := svc.DeleteBooking("Admin", booking.ID); err != nil {
		t.Fatalf("DeleteBooking: %v", err)
	}
	if _, err := s.Bookings.Get(booking.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("booking still present after delete")
	}

	if err := svc.DeleteBooking("Admin", booking.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}
