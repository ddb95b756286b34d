package store

import "voyago/internal/models/db_models"

// Allowed status transitions. Cancelled and Resolved are terminal for
// bookings; reopening means creating a new booking.
var bookingTransitions = map[db_models.BookingStatus][]db_models.BookingStatus{
	db_models.BookingPending:   {db_models.BookingConfirmed, db_models.BookingCancelled, db_models.BookingResolved},
	db_models.BookingConfirmed: {db_models.BookingCancelled, db_models.BookingResolved},
	db_models.BookingCancelled: {},
	db_models.BookingResolved:  {},
}

// Drivers toggle between Available and Busy; Offline is reachable from
// either but only Available comes back from it.
var driverTransitions = map[db_models.DriverStatus][]db_models.DriverStatus{
	db_models.DriverAvailable: {db_models.DriverBusy, db_models.DriverOffline},
	db_models.DriverBusy:      {db_models.DriverAvailable, db_models.DriverOffline},
	db_models.DriverOffline:   {db_models.DriverAvailable},
}

func IsBookingStatus(s db_models.BookingStatus) bool {
	_, ok := bookingTransitions[s]
	return ok
}

func IsDriverStatus(s db_models.DriverStatus) bool {
	_, ok := driverTransitions[s]
	return ok
}

func CanTransitionBooking(from, to db_models.BookingStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func CanTransitionDriver(from, to db_models.DriverStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range driverTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
