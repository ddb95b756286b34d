package response_models

// ItineraryActivity is one scheduled block of an AI-generated day.
type ItineraryActivity struct {
	Activity      string  `json:"activity"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	WhatToDo      string  `json:"what_to_do"`
	EstimatedCost float64 `json:"estimated_cost,omitempty"`
}

type DailyPlan struct {
	Day        int                 `json:"day"`
	Date       string              `json:"date"`
	Stay       string              `json:"stay,omitempty"`
	Activities []ItineraryActivity `json:"activities"`
}

type ItineraryResponse struct {
	RequestToken string      `json:"request_token,omitempty"`
	Destination  string      `json:"destination"`
	Days         int         `json:"days"`
	Plan         []DailyPlan `json:"plan"`
}

type BlogFAQResponse struct {
	Topic string    `json:"topic"`
	FAQs  []FAQItem `json:"faqs"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
