package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pgvector/pgvector-go"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/store"
	"voyago/pkg/utils"
)

type fakeAIClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeAIClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeAIClient) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeAIClient) GetEmbedding(context.Context, string) (pgvector.Vector, error) {
	return pgvector.NewVector([]float32{0.1, 0.2}), f.err
}

func (f *fakeAIClient) Close() error { return nil }

func newTestStore() *store.Store {
	return store.NewStore(store.Config{StrictTransitions: true})
}

const validTwoDayPlan = "```json\n" + `{
  "days": [
    {
      "day": 1,
      "stay": "Fort Kochi",
      "activities": [
        {"activity": "Backwater cruise", "start_time": "09:00", "end_time": "13:00", "what_to_do": "Houseboat through the canals", "estimated_cost": 2500},
        {"activity": "Kathakali show", "start_time": "18:00", "end_time": "20:00", "what_to_do": "Traditional dance performance", "estimated_cost": 500}
      ]
    },
    {
      "day": 2,
      "activities": [
        {"activity": "Spice market walk", "start_time": "10:00", "end_time": "12:30", "what_to_do": "Guided tour of Mattancherry"}
      ]
    }
  ]
}` + "\n```"

func TestGenerateItineraryValidPlan(t *testing.T) {
	ai := &fakeAIClient{response: validTwoDayPlan}
	svc := NewItineraryService(newTestStore(), ai)

	resp, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{
		Destination:  "Kerala",
		Days:         2,
		RequestToken: "tok-42",
	})
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}

	if resp.RequestToken != "tok-42" {
		t.Errorf("request token = %q, want tok-42", resp.RequestToken)
	}
	if len(resp.Plan) != 2 {
		t.Fatalf("plan length = %d, want 2", len(resp.Plan))
	}
	if resp.Plan[0].Stay != "Fort Kochi" {
		t.Errorf("day 1 stay = %q", resp.Plan[0].Stay)
	}
	if got := len(resp.Plan[0].Activities); got != 2 {
		t.Errorf("day 1 activities = %d, want 2", got)
	}
	if resp.Plan[1].Day != 2 {
		t.Errorf("day 2 number = %d", resp.Plan[1].Day)
	}
}

func TestGenerateItineraryPadsMissingDays(t *testing.T) {
	// Response covers days 1 and 3 of a 3-day request; day 2 must be padded.
	ai := &fakeAIClient{response: `{"days":[
		{"day":1,"activities":[{"activity":"Arrival","start_time":"10:00","end_time":"12:00","what_to_do":"Check in"}]},
		{"day":3,"activities":[{"activity":"Departure","start_time":"09:00","end_time":"11:00","what_to_do":"Fly home"}]}
	]}`}
	svc := NewItineraryService(newTestStore(), ai)

	resp, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{
		Destination: "Goa",
		Days:        3,
	})
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}

	if len(resp.Plan) != 3 {
		t.Fatalf("plan length = %d, want 3", len(resp.Plan))
	}
	padded := resp.Plan[1]
	if padded.Day != 2 {
		t.Fatalf("padded day number = %d, want 2", padded.Day)
	}
	if len(padded.Activities) != 1 || padded.Activities[0].Activity != "Free time" {
		t.Errorf("padded day activities = %+v, want one free-time block", padded.Activities)
	}
}

func TestGenerateItineraryRejectsBadResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "I cannot plan that trip, sorry."},
		{"no days", `{"days":[]}`},
		{"too many days", `{"days":[{"day":1,"activities":[]},{"day":2,"activities":[]},{"day":3,"activities":[]}]}`},
		{"day out of range", `{"days":[{"day":5,"activities":[]}]}`},
		{"duplicate day", `{"days":[{"day":1,"activities":[]},{"day":1,"activities":[]}]}`},
		{"bad time format", `{"days":[{"day":1,"activities":[{"activity":"X","start_time":"9am","end_time":"11:00","what_to_do":"Y"}]}]}`},
		{"empty activity name", `{"days":[{"day":1,"activities":[{"activity":"","start_time":"09:00","end_time":"11:00","what_to_do":"Y"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewItineraryService(newTestStore(), &fakeAIClient{response: tt.response})

			_, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{
				Destination: "Goa",
				Days:        2,
			})
			if !errors.Is(err, utils.ErrMalformedAIResponse) {
				t.Errorf("err = %v, want ErrMalformedAIResponse", err)
			}
		})
	}
}

func TestGenerateItineraryInputValidation(t *testing.T) {
	svc := NewItineraryService(newTestStore(), &fakeAIClient{response: validTwoDayPlan})

	tests := []struct {
		name string
		req  request_models.GenerateItineraryRequest
	}{
		{"empty destination", request_models.GenerateItineraryRequest{Days: 2}},
		{"zero days", request_models.GenerateItineraryRequest{Destination: "Goa"}},
		{"too many days", request_models.GenerateItineraryRequest{Destination: "Goa", Days: 31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.GenerateItinerary(context.Background(), tt.req); !errors.Is(err, utils.ErrInvalidInput) {
				t.Errorf("err = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestGenerateItineraryProviderFailure(t *testing.T) {
	svc := NewItineraryService(newTestStore(), &fakeAIClient{err: errors.New("quota exceeded")})

	_, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{
		Destination: "Goa",
		Days:        2,
	})
	if !errors.Is(err, utils.ErrUnexpectedBehaviorOfAI) {
		t.Errorf("err = %v, want ErrUnexpectedBehaviorOfAI", err)
	}
}

func TestGenerateItineraryNoClient(t *testing.T) {
	svc := NewItineraryService(newTestStore(), nil)

	_, err := svc.GenerateItinerary(context.Background(), request_models.GenerateItineraryRequest{
		Destination: "Goa",
		Days:        2,
	})
	if !errors.Is(err, utils.ErrAINotConfigured) {
		t.Errorf("err = %v, want ErrAINotConfigured", err)
	}
}

func TestEnrichPackageMergesContent(t *testing.T) {
	s := newTestStore()
	pkg := db_models.TourPackage{ID: "pkg-1", Name: "Goa Getaway", Destination: "Goa"}
	if err := s.Packages.Add(pkg); err != nil {
		t.Fatalf("seed package: %v", err)
	}

	ai := &fakeAIClient{response: `{
		"hiddenGems": [{"title": "Butterfly Beach", "description": "Reachable only by boat"}],
		"foodGuide": [{"title": "Fish thali", "description": "Local lunch staple"}],
		"packingList": [],
		"safetyTips": [],
		"visaInfo": {"required": false},
		"airportInfo": {"nearest": "Dabolim", "code": "GOI"}
	}`}
	svc := NewItineraryService(s, ai)

	enriched, err := svc.EnrichPackage(context.Background(), "Admin", "pkg-1")
	if err != nil {
		t.Fatalf("EnrichPackage: %v", err)
	}

	if len(enriched.HiddenGems) != 1 || enriched.HiddenGems[0].Title != "Butterfly Beach" {
		t.Errorf("hidden gems = %+v", enriched.HiddenGems)
	}
	if enriched.AirportInfo == nil || enriched.AirportInfo.Code != "GOI" {
		t.Errorf("airport info = %+v", enriched.AirportInfo)
	}

	stored, err := s.Packages.Get("pkg-1")
	if err != nil {
		t.Fatalf("Get after enrich: %v", err)
	}
	if len(stored.FoodGuide) != 1 {
		t.Errorf("stored food guide = %+v", stored.FoodGuide)
	}

	entries := s.Activity.List()
	if len(entries) == 0 || entries[0].Action != "enrich" {
		t.Errorf("expected enrich activity entry, got %+v", entries)
	}
}

func TestEnrichPackageAllSectionsEmpty(t *testing.T) {
	s := newTestStore()
	if err := s.Packages.Add(db_models.TourPackage{ID: "pkg-1", Name: "Goa", Destination: "Goa"}); err != nil {
		t.Fatalf("seed package: %v", err)
	}

	svc := NewItineraryService(s, &fakeAIClient{response: `{"hiddenGems":[],"foodGuide":[],"packingList":[],"safetyTips":[]}`})

	if _, err := svc.EnrichPackage(context.Background(), "Admin", "pkg-1"); !errors.Is(err, utils.ErrMalformedAIResponse) {
		t.Errorf("err = %v, want ErrMalformedAIResponse", err)
	}
}

func TestEnrichPackageNotFound(t *testing.T) {
	svc := NewItineraryService(newTestStore(), &fakeAIClient{response: "{}"})

	if _, err := svc.EnrichPackage(context.Background(), "Admin", "missing"); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGenerateBlogFAQ(t *testing.T) {
	ai := &fakeAIClient{response: `{"faqs":[
		{"question": "Best season to visit?", "answer": "October to March."},
		{"question": "Is it family friendly?", "answer": "Yes."}
	]}`}
	svc := NewItineraryService(newTestStore(), ai)

	resp, err := svc.GenerateBlogFAQ(context.Background(), "Kerala")
	if err != nil {
		t.Fatalf("GenerateBlogFAQ: %v", err)
	}
	if resp.Topic != "Kerala" || len(resp.FAQs) != 2 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestGenerateBlogFAQRejectsEmptyAnswers(t *testing.T) {
	svc := NewItineraryService(newTestStore(), &fakeAIClient{
		response: `{"faqs":[{"question": "Best season?", "answer": ""}]}`,
	})

	if _, err := svc.GenerateBlogFAQ(context.Background(), "Kerala"); !errors.Is(err, utils.ErrMalformedAIResponse) {
		t.Errorf("err = %v, want ErrMalformedAIResponse", err)
	}
}
