package db_models

type BookingType string

const (
	BookingTypePackage BookingType = "Package"
	BookingTypeTaxi    BookingType = "Taxi"
	BookingTypeAIPlan  BookingType = "AI Plan"
	BookingTypeGeneral BookingType = "General"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingResolved  BookingStatus = "Resolved"
)

// Booking covers package bookings, taxi hires, saved AI plans and general
// enquiries; Type decides which of the optional fields are meaningful.
type Booking struct {
	ID            string        `json:"id"`
	Type          BookingType   `json:"type"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	CustomerPhone string        `json:"customerPhone,omitempty"`
	ItemID        string        `json:"itemId,omitempty"`
	ItemName      string        `json:"itemName,omitempty"`
	Date          string        `json:"date"`
	TravelDate    string        `json:"travelDate,omitempty"`
	Status        BookingStatus `json:"status"`
	TotalAmount   float64       `json:"totalAmount"`
	Paid          bool          `json:"paid"`
	Travelers     int           `json:"travelers,omitempty"`
	Message       string        `json:"message,omitempty"`
}
