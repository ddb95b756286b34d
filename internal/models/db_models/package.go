package db_models

// ItineraryDay is one entry in a package's ordered day-by-day plan.
type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities,omitempty"`
	Meals       string   `json:"meals,omitempty"`
	Stay        string   `json:"stay,omitempty"`
}

// TravelTip covers the descriptive record lists attached to a package:
// hidden gems, food guide entries, packing list items and safety tips all
// share the same shape.
type TravelTip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

type VisaInfo struct {
	Required       bool   `json:"required"`
	Type           string `json:"type,omitempty"`
	ProcessingTime string `json:"processingTime,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type AirportInfo struct {
	Nearest      string `json:"nearest"`
	Code         string `json:"code,omitempty"`
	DistanceKm   int    `json:"distanceKm,omitempty"`
	TransferNote string `json:"transferNote,omitempty"`
}

// TourPackage is the catalogue entity the site sells. Price is in the base
// currency; display conversion happens in the presentation layer.
type TourPackage struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	Destination  string         `json:"destination"`
	Price        float64        `json:"price"`
	Duration     string         `json:"duration"`
	Category     string         `json:"category"`
	GroupSize    string         `json:"groupSize,omitempty"`
	Images       []string       `json:"images"`
	Rating       float64        `json:"rating"`
	ReviewsCount int            `json:"reviewsCount"`
	Description  string         `json:"description,omitempty"`
	Itinerary    []ItineraryDay `json:"itinerary,omitempty"`
	HiddenGems   []TravelTip    `json:"hiddenGems,omitempty"`
	FoodGuide    []TravelTip    `json:"foodGuide,omitempty"`
	PackingList  []TravelTip    `json:"packingList,omitempty"`
	SafetyTips   []TravelTip    `json:"safetyTips,omitempty"`
	VisaInfo     *VisaInfo      `json:"visaInfo,omitempty"`
	AirportInfo  *AirportInfo   `json:"airportInfo,omitempty"`
}
