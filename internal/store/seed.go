package store

import "voyago/internal/models/db_models"

// seed loads the demo catalogue the site ships with. Adds prepend, so the
// last entity seeded per collection lists first.
func (s *Store) seed() {
	packages := []db_models.TourPackage{
		{
			ID:           "pkg-kerala-backwaters",
			Name:         "Kerala Backwaters Escape",
			Slug:         "kerala-backwaters-escape",
			Destination:  "Alleppey, India",
			Price:        24999,
			Duration:     "5 Days / 4 Nights",
			Category:     "Honeymoon",
			GroupSize:    "2-6",
			Images:       []string{"/images/kerala-houseboat.jpg", "/images/kerala-canals.jpg"},
			Rating:       4.8,
			ReviewsCount: 212,
			Description:  "Houseboat cruises through the palm-lined canals of Alleppey with village walks and ayurvedic spa evenings.",
			Itinerary: []db_models.ItineraryDay{
				{Day: 1, Title: "Arrival in Kochi", Description: "Airport pickup and transfer to Alleppey.", Meals: "Dinner"},
				{Day: 2, Title: "Houseboat cruise", Description: "Full-day cruise with onboard Kerala sadya lunch.", Meals: "All"},
			},
			VisaInfo:    &db_models.VisaInfo{Required: false, Notes: "Domestic travel within India."},
			AirportInfo: &db_models.AirportInfo{Nearest: "Cochin International", Code: "COK", DistanceKm: 78},
		},
		{
			ID:           "pkg-ladakh-road-trip",
			Name:         "Ladakh High Passes Road Trip",
			Slug:         "ladakh-high-passes-road-trip",
			Destination:  "Leh, India",
			Price:        38500,
			Duration:     "7 Days / 6 Nights",
			Category:     "Adventure",
			GroupSize:    "4-12",
			Images:       []string{"/images/ladakh-pangong.jpg"},
			Rating:       4.9,
			ReviewsCount: 148,
			Description:  "Khardung La, Nubra Valley and Pangong Tso with acclimatization days built in.",
		},
		{
			ID:           "pkg-bali-family",
			Name:         "Bali Family Week",
			Slug:         "bali-family-week",
			Destination:  "Bali, Indonesia",
			Price:        64999,
			Duration:     "6 Days / 5 Nights",
			Category:     "Family",
			GroupSize:    "2-8",
			Images:       []string{"/images/bali-rice-terraces.jpg"},
			Rating:       4.6,
			ReviewsCount: 97,
			Description:  "Ubud rice terraces, waterpark day and a Nusa Penida boat trip.",
			VisaInfo:     &db_models.VisaInfo{Required: true, Type: "Visa on arrival", ProcessingTime: "On arrival"},
			AirportInfo:  &db_models.AirportInfo{Nearest: "Ngurah Rai International", Code: "DPS", DistanceKm: 13},
		},
	}
	for i := len(packages) - 1; i >= 0; i-- {
		_ = s.Packages.Add(packages[i])
	}

	drivers := []db_models.Driver{
		{
			ID:     "drv-1001",
			Name:   "Suresh Nair",
			Phone:  "+91 98470 11223",
			Status: db_models.DriverAvailable,
			Vehicle: db_models.Vehicle{
				Type: "Sedan", Model: "Maruti Dzire", Plate: "KL-07-AX-4521", Capacity: 4, AC: true,
			},
			Rates: db_models.DriverRates{PerKm: 14, BaseFare: 250},
		},
		{
			ID:     "drv-1002",
			Name:   "Imran Shaikh",
			Phone:  "+91 98200 55671",
			Status: db_models.DriverBusy,
			Vehicle: db_models.Vehicle{
				Type: "SUV", Model: "Toyota Innova Crysta", Plate: "MH-01-CT-8890", Capacity: 7, AC: true,
			},
			Rates:    db_models.DriverRates{PerKm: 19, BaseFare: 400},
			Earnings: db_models.DriverEarnings{Today: 2150, Total: 184300, Commission: 18430},
		},
	}
	for i := len(drivers) - 1; i >= 0; i-- {
		_ = s.Drivers.Add(drivers[i])
	}

	posts := []db_models.BlogPost{
		{
			ID:      "blog-monsoon-kerala",
			Slug:    "monsoon-in-kerala-what-to-expect",
			Title:   "Monsoon in Kerala: What to Expect",
			Content: "<p>The southwest monsoon turns the backwaters a deeper green...</p>",
			Excerpt: "Why June to August is the most underrated season for the backwaters.",
			Author:  "Voyago Team",
			Date:    "2025-06-14",
			Tags:    []string{"kerala", "monsoon", "seasonal"},
			Status:  db_models.BlogPublished,
		},
		{
			ID:      "blog-ladakh-packing",
			Slug:    "packing-for-ladakh-draft",
			Title:   "Packing for Ladakh",
			Content: "<p>Draft notes on layering for high-altitude cold deserts.</p>",
			Author:  "Voyago Team",
			Date:    "2025-07-02",
			Status:  db_models.BlogDraft,
		},
	}
	for i := len(posts) - 1; i >= 0; i-- {
		_ = s.BlogPosts.Add(posts[i])
	}

	s.ReplaceSettings(db_models.SettingsState{
		Company: db_models.CompanyProfile{
			Name:         "Voyago Travels",
			Tagline:      "Plan less, wander more",
			Email:        "hello@voyago.example",
			Phone:        "+91 80 4711 2200",
			BaseCurrency: "INR",
		},
		AI: db_models.AISettings{Provider: "gemini", Model: "gemini-1.5-flash"},
		SEO: db_models.SeoSettings{
			SiteTitle:       "Voyago Travels | Packages, Taxis & AI Trip Plans",
			MetaDescription: "Curated tour packages, reliable drivers and AI-generated itineraries.",
		},
		Pages: db_models.PageSettings{
			HeroHeading:    "Where to next?",
			HeroSubheading: "Handpicked packages and instant AI itineraries.",
			Pages: []db_models.SitePage{
				{Key: "about", Title: "About Us", Content: "<p>We have planned trips since 2012.</p>", Visible: true},
				{Key: "terms", Title: "Terms & Conditions", Content: "<p>Standard booking terms.</p>", Visible: true},
			},
		},
	})
}
