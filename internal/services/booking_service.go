package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/store"
	"voyago/pkg/utils"
)

type BookingServiceInterface interface {
	ListBookings() []db_models.Booking
	GetBookingByID(id string) (db_models.Booking, error)
	CreateBooking(req request_models.CreateBookingRequest) (db_models.Booking, error)
	UpdateBookingStatus(actor, id string, status db_models.BookingStatus) (db_models.Booking, error)
	MarkBookingPaid(actor, id string, paid bool) (db_models.Booking, error)
	DeleteBooking(actor, id string) error
}

type BookingService struct {
	store *store.Store
	mail  MailServiceInterface
}

func NewBookingService(s *store.Store, mail MailServiceInterface) BookingServiceInterface {
	return &BookingService{store: s, mail: mail}
}

func bookingPrefix(t db_models.BookingType) (string, bool) {
	switch t {
	case db_models.BookingTypePackage:
		return utils.BookingPrefixPackage, true
	case db_models.BookingTypeTaxi:
		return utils.BookingPrefixTaxi, true
	case db_models.BookingTypeAIPlan:
		return utils.BookingPrefixAIPlan, true
	case db_models.BookingTypeGeneral:
		return utils.BookingPrefixGeneral, true
	default:
		return "", false
	}
}

func (b *BookingService) ListBookings() []db_models.Booking {
	return b.store.Bookings.List()
}

func (b *BookingService) GetBookingByID(id string) (db_models.Booking, error) {
	return b.store.Bookings.Get(id)
}

// CreateBooking serves all four public entry points: package bookings, taxi
// hires, saved AI plans and general enquiries.
func (b *BookingService) CreateBooking(req request_models.CreateBookingRequest) (db_models.Booking, error) {
	bookingType := db_models.BookingType(req.Type)
	prefix, ok := bookingPrefix(bookingType)
	if !ok {
		return db_models.Booking{}, utils.ErrInvalidInput
	}
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerEmail) == "" {
		return db_models.Booking{}, utils.ErrInvalidInput
	}

	booking := db_models.Booking{
		ID:            utils.NewBookingID(prefix),
		Type:          bookingType,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ItemID:        req.ItemID,
		ItemName:      req.ItemName,
		Date:          utils.FormatBookingDate(time.Now()),
		TravelDate:    req.TravelDate,
		Status:        db_models.BookingPending,
		TotalAmount:   req.TotalAmount,
		Travelers:     req.Travelers,
		Message:       req.Message,
	}

	err := b.store.Bookings.Add(booking)
	if errors.Is(err, utils.ErrDuplicateID) {
		// Two bookings in the same millisecond; retry with a suffixed id.
		booking.ID = utils.NewBookingIDDisambiguated(prefix)
		err = b.store.Bookings.Add(booking)
	}
	if err != nil {
		return db_models.Booking{}, err
	}

	_, _ = b.store.RecordActivity("Customer", "create",
		fmt.Sprintf("New %s booking from %s", booking.Type, booking.CustomerName),
		db_models.TargetBooking, booking.ID, nil)

	return booking, nil
}

func (b *BookingService) UpdateBookingStatus(actor, id string, status db_models.BookingStatus) (db_models.Booking, error) {
	previous, err := b.store.Bookings.Get(id)
	if err != nil {
		return db_models.Booking{}, err
	}

	booking, err := b.store.UpdateBookingStatus(id, status)
	if err != nil {
		return db_models.Booking{}, err
	}

	_, _ = b.store.RecordActivity(actor, "status",
		fmt.Sprintf("Booking %s: %s -> %s", id, previous.Status, status),
		db_models.TargetBooking, id, previous)

	// Confirmation mail is best effort; the status change already happened.
	if status == db_models.BookingConfirmed && b.mail != nil {
		if err := b.mail.SendBookingConfirmation(booking); err != nil {
			log.Printf("booking %s confirmed but mail failed: %v", id, err)
		}
	}

	return booking, nil
}

func (b *BookingService) MarkBookingPaid(actor, id string, paid bool) (db_models.Booking, error) {
	previous, err := b.store.Bookings.Get(id)
	if err != nil {
		return db_models.Booking{}, err
	}

	booking := previous
	booking.Paid = paid
	if err := b.store.Bookings.Update(booking); err != nil {
		return db_models.Booking{}, err
	}

	_, _ = b.store.RecordActivity(actor, "update",
		fmt.Sprintf("Booking %s marked paid=%t", id, paid),
		db_models.TargetBooking, id, previous)

	return booking, nil
}

func (b *BookingService) DeleteBooking(actor, id string) error {
	previous, err := b.store.Bookings.Get(id)
	if err != nil {
		return err
	}

	if err := b.store.Bookings.Delete(id); err != nil {
		return err
	}

	_, _ = b.store.RecordActivity(actor, "delete",
		fmt.Sprintf("Deleted booking %s (%s)", id, previous.CustomerName),
		db_models.TargetBooking, id, previous)

	return nil
}
