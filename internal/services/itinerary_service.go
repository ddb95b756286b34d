package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/store"
	"voyago/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (response_models.ItineraryResponse, error)
	EnrichPackage(ctx context.Context, actor, packageID string) (db_models.TourPackage, error)
	GenerateBlogFAQ(ctx context.Context, topic string) (response_models.BlogFAQResponse, error)
}

type ItineraryService struct {
	store    *store.Store
	aiClient utils.GenAIClientInterface
}

func NewItineraryService(s *store.Store, aiClient utils.GenAIClientInterface) ItineraryServiceInterface {
	return &ItineraryService{store: s, aiClient: aiClient}
}

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// aiItinerary is the only shape the planner accepts back from the model.
// Anything that fails to unmarshal or validate is rejected before touching
// response construction.
type aiItinerary struct {
	Days []aiDay `json:"days"`
}

type aiDay struct {
	Day        int          `json:"day"`
	Stay       string       `json:"stay,omitempty"`
	Activities []aiActivity `json:"activities"`
}

type aiActivity struct {
	Activity      string  `json:"activity"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	WhatToDo      string  `json:"what_to_do"`
	EstimatedCost float64 `json:"estimated_cost,omitempty"`
}

func (i *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (response_models.ItineraryResponse, error) {
	if i.aiClient == nil {
		return response_models.ItineraryResponse{}, utils.ErrAINotConfigured
	}
	if strings.TrimSpace(req.Destination) == "" {
		return response_models.ItineraryResponse{}, utils.ErrInvalidInput
	}
	if req.Days < 1 || req.Days > 30 {
		return response_models.ItineraryResponse{}, utils.ErrInvalidInput
	}

	startTime := time.Now()
	prompt := i.buildItineraryPrompt(req)

	rawJSON, err := i.aiClient.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("AI generation error: %v", err)
		return response_models.ItineraryResponse{}, utils.ErrUnexpectedBehaviorOfAI
	}

	log.Printf("Itinerary generation for %q took %s", req.Destination, time.Since(startTime))

	plan, err := parseItinerary(rawJSON, req.Days)
	if err != nil {
		return response_models.ItineraryResponse{}, err
	}

	return response_models.ItineraryResponse{
		RequestToken: req.RequestToken,
		Destination:  req.Destination,
		Days:         req.Days,
		Plan:         plan,
	}, nil
}

func (i *ItineraryService) buildItineraryPrompt(req request_models.GenerateItineraryRequest) string {
	currency := i.store.Settings().Company.BaseCurrency
	if currency == "" {
		currency = "INR"
	}

	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Create a %d-day travel itinerary for %s. Return JSON only:\n", req.Days, req.Destination))
	prompt.WriteString(`{"days":[{"day":1,"stay":"area or hotel suggestion","activities":[{"activity":"...","start_time":"09:00","end_time":"11:00","what_to_do":"...","estimated_cost":0}]}]}`)
	prompt.WriteString("\n\nHard constraints:\n")
	prompt.WriteString(fmt.Sprintf("- Exactly %d days in \"days\", day = 1..%d with no gaps.\n", req.Days, req.Days))
	prompt.WriteString("- start_time < end_time; times formatted HH:MM within 08:00-22:00.\n")
	prompt.WriteString("- 2-5 activities per day, no overlapping times.\n")
	prompt.WriteString(fmt.Sprintf("- estimated_cost is per person in %s.\n", currency))

	if req.Travelers > 0 {
		prompt.WriteString(fmt.Sprintf("- Group of %d travelers.\n", req.Travelers))
	}
	if req.Budget > 0 {
		prompt.WriteString(fmt.Sprintf("- Total budget around %s.\n", utils.FormatCurrency(req.Budget, currency)))
	}
	if len(req.Interests) > 0 {
		prompt.WriteString("- Bias activities toward: " + strings.Join(req.Interests, ", ") + ".\n")
	}

	prompt.WriteString("\nReturn JSON only. No comments, no markdown.")
	return prompt.String()
}

// parseItinerary validates the model output and converts it into daily
// plans. Days the model skipped are padded with free-time blocks so the
// response always has the requested length.
func parseItinerary(rawJSON string, dayCount int) ([]response_models.DailyPlan, error) {
	cleaned := utils.CleanJSONResponse(rawJSON)

	var parsed aiItinerary
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedAIResponse, err)
	}
	if len(parsed.Days) == 0 {
		return nil, fmt.Errorf("%w: plan contains no days", utils.ErrMalformedAIResponse)
	}
	if len(parsed.Days) > dayCount {
		return nil, fmt.Errorf("%w: expected %d days, got %d", utils.ErrMalformedAIResponse, dayCount, len(parsed.Days))
	}

	byDay := make(map[int]aiDay, len(parsed.Days))
	for _, day := range parsed.Days {
		if day.Day < 1 || day.Day > dayCount {
			return nil, fmt.Errorf("%w: day number %d out of range", utils.ErrMalformedAIResponse, day.Day)
		}
		if _, dup := byDay[day.Day]; dup {
			return nil, fmt.Errorf("%w: duplicate day %d", utils.ErrMalformedAIResponse, day.Day)
		}
		for j, activity := range day.Activities {
			if err := validateActivity(activity); err != nil {
				return nil, fmt.Errorf("%w: day %d, activity %d: %v", utils.ErrMalformedAIResponse, day.Day, j+1, err)
			}
		}
		byDay[day.Day] = day
	}

	plans := make([]response_models.DailyPlan, 0, dayCount)
	for dayNum := 1; dayNum <= dayCount; dayNum++ {
		date := time.Now().AddDate(0, 0, dayNum-1).Format("2006-01-02")

		day, ok := byDay[dayNum]
		if !ok || len(day.Activities) == 0 {
			plans = append(plans, response_models.DailyPlan{
				Day:  dayNum,
				Date: date,
				Activities: []response_models.ItineraryActivity{
					{
						Activity:  "Free time",
						StartTime: "09:00",
						EndTime:   "18:00",
						WhatToDo:  "Explore the area at your own pace",
					},
				},
			})
			continue
		}

		activities := make([]response_models.ItineraryActivity, 0, len(day.Activities))
		for _, a := range day.Activities {
			activities = append(activities, response_models.ItineraryActivity{
				Activity:      a.Activity,
				StartTime:     a.StartTime,
				EndTime:       a.EndTime,
				WhatToDo:      a.WhatToDo,
				EstimatedCost: a.EstimatedCost,
			})
		}
		plans = append(plans, response_models.DailyPlan{
			Day:        dayNum,
			Date:       date,
			Stay:       day.Stay,
			Activities: activities,
		})
	}

	return plans, nil
}

func validateActivity(a aiActivity) error {
	if strings.TrimSpace(a.Activity) == "" {
		return fmt.Errorf("activity name cannot be empty")
	}
	if !timePattern.MatchString(a.StartTime) {
		return fmt.Errorf("invalid start_time format: %s (expected HH:MM)", a.StartTime)
	}
	if !timePattern.MatchString(a.EndTime) {
		return fmt.Errorf("invalid end_time format: %s (expected HH:MM)", a.EndTime)
	}
	if strings.TrimSpace(a.WhatToDo) == "" {
		return fmt.Errorf("what_to_do cannot be empty")
	}
	return nil
}

// aiPackageContent mirrors the package fields the enrichment prompt asks
// the model to fill.
type aiPackageContent struct {
	HiddenGems  []db_models.TravelTip  `json:"hiddenGems"`
	FoodGuide   []db_models.TravelTip  `json:"foodGuide"`
	PackingList []db_models.TravelTip  `json:"packingList"`
	SafetyTips  []db_models.TravelTip  `json:"safetyTips"`
	VisaInfo    *db_models.VisaInfo    `json:"visaInfo"`
	AirportInfo *db_models.AirportInfo `json:"airportInfo"`
}

// EnrichPackage asks the model for the structured content sections of a
// package and merges the validated result into the catalogue.
func (i *ItineraryService) EnrichPackage(ctx context.Context, actor, packageID string) (db_models.TourPackage, error) {
	if i.aiClient == nil {
		return db_models.TourPackage{}, utils.ErrAINotConfigured
	}

	pkg, err := i.store.Packages.Get(packageID)
	if err != nil {
		return db_models.TourPackage{}, err
	}

	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf("You are writing guide content for the travel package %q (%s).\n", pkg.Name, pkg.Destination))
	prompt.WriteString("Return JSON only, matching exactly:\n")
	prompt.WriteString(`{"hiddenGems":[{"title":"...","description":"..."}],"foodGuide":[{"title":"...","description":"..."}],"packingList":[{"title":"...","description":"..."}],"safetyTips":[{"title":"...","description":"..."}],"visaInfo":{"required":false,"type":"","processingTime":"","notes":""},"airportInfo":{"nearest":"...","code":"...","distanceKm":0,"transferNote":"..."}}`)
	prompt.WriteString("\n3-5 entries per list. Return JSON only. No comments, no markdown.")

	rawJSON, err := i.aiClient.GenerateJSON(ctx, prompt.String())
	if err != nil {
		log.Printf("AI enrichment error: %v", err)
		return db_models.TourPackage{}, utils.ErrUnexpectedBehaviorOfAI
	}

	var content aiPackageContent
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(rawJSON)), &content); err != nil {
		return db_models.TourPackage{}, fmt.Errorf("%w: %v", utils.ErrMalformedAIResponse, err)
	}
	if len(content.HiddenGems) == 0 && len(content.FoodGuide) == 0 &&
		len(content.PackingList) == 0 && len(content.SafetyTips) == 0 {
		return db_models.TourPackage{}, fmt.Errorf("%w: all content sections empty", utils.ErrMalformedAIResponse)
	}

	previous := pkg
	if len(content.HiddenGems) > 0 {
		pkg.HiddenGems = content.HiddenGems
	}
	if len(content.FoodGuide) > 0 {
		pkg.FoodGuide = content.FoodGuide
	}
	if len(content.PackingList) > 0 {
		pkg.PackingList = content.PackingList
	}
	if len(content.SafetyTips) > 0 {
		pkg.SafetyTips = content.SafetyTips
	}
	if content.VisaInfo != nil {
		pkg.VisaInfo = content.VisaInfo
	}
	if content.AirportInfo != nil {
		pkg.AirportInfo = content.AirportInfo
	}

	if err := i.store.Packages.Update(pkg); err != nil {
		return db_models.TourPackage{}, err
	}

	_, _ = i.store.RecordActivity(actor, "enrich",
		fmt.Sprintf("AI-enriched content for package %q", pkg.Name),
		db_models.TargetPackage, pkg.ID, previous)

	return pkg, nil
}

type aiFAQList struct {
	FAQs []response_models.FAQItem `json:"faqs"`
}

func (i *ItineraryService) GenerateBlogFAQ(ctx context.Context, topic string) (response_models.BlogFAQResponse, error) {
	if i.aiClient == nil {
		return response_models.BlogFAQResponse{}, utils.ErrAINotConfigured
	}
	if strings.TrimSpace(topic) == "" {
		return response_models.BlogFAQResponse{}, utils.ErrInvalidInput
	}

	prompt := fmt.Sprintf(
		"Write 5 frequently asked questions with answers about traveling to %s.\n"+
			"Return JSON only, matching exactly: {\"faqs\":[{\"question\":\"...\",\"answer\":\"...\"}]}\n"+
			"Return JSON only. No comments, no markdown.", topic)

	rawJSON, err := i.aiClient.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("AI FAQ error: %v", err)
		return response_models.BlogFAQResponse{}, utils.ErrUnexpectedBehaviorOfAI
	}

	var parsed aiFAQList
	if err := json.Unmarshal([]byte(utils.CleanJSONResponse(rawJSON)), &parsed); err != nil {
		return response_models.BlogFAQResponse{}, fmt.Errorf("%w: %v", utils.ErrMalformedAIResponse, err)
	}
	if len(parsed.FAQs) == 0 {
		return response_models.BlogFAQResponse{}, fmt.Errorf("%w: no FAQs returned", utils.ErrMalformedAIResponse)
	}
	for _, faq := range parsed.FAQs {
		if strings.TrimSpace(faq.Question) == "" || strings.TrimSpace(faq.Answer) == "" {
			return response_models.BlogFAQResponse{}, fmt.Errorf("%w: empty question or answer", utils.ErrMalformedAIResponse)
		}
	}

	return response_models.BlogFAQResponse{Topic: topic, FAQs: parsed.FAQs}, nil
}
