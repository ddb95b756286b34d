package request_models

// GenerateItineraryRequest drives the AI planner. RequestToken is chosen by
// the caller and echoed back on the response so a client that fired two
// overlapping generations can discard the stale one.
type GenerateItineraryRequest struct {
	Destination  string   `json:"destination" binding:"required"`
	Days         int      `json:"days" binding:"required,min=1,max=30"`
	Travelers    int      `json:"travelers"`
	Budget       float64  `json:"budget"`
	Interests    []string `json:"interests"`
	RequestToken string   `json:"request_token"`
}

type EnrichPackageRequest struct {
	PackageID string `json:"package_id" binding:"required"`
}

type BlogFAQRequest struct {
	Topic string `json:"topic" binding:"required"`
}

type SuggestPackagesRequest struct {
	Query string `json:"query" binding:"required"`
}
