package db_models

type BlogStatus string

const (
	BlogDraft     BlogStatus = "Draft"
	BlogPublished BlogStatus = "Published"
)

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GalleryItem struct {
	Image   string `json:"image"`
	Caption string `json:"caption,omitempty"`
}

// WeatherMonth is one row of a destination weather table.
type WeatherMonth struct {
	Month     string `json:"month"`
	TempMinC  int    `json:"tempMinC"`
	TempMaxC  int    `json:"tempMaxC"`
	Condition string `json:"condition,omitempty"`
}

type Festival struct {
	Name        string `json:"name"`
	Month       string `json:"month"`
	Description string `json:"description,omitempty"`
}

// BlogPost content is raw HTML; the admin editor and the AI enrichment both
// write full documents, never fragments to be merged.
type BlogPost struct {
	ID             string         `json:"id"`
	Slug           string         `json:"slug"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	Excerpt        string         `json:"excerpt,omitempty"`
	Author         string         `json:"author"`
	Date           string         `json:"date"`
	Tags           []string       `json:"tags,omitempty"`
	Status         BlogStatus     `json:"status"`
	SEOTitle       string         `json:"seoTitle,omitempty"`
	SEODescription string         `json:"seoDescription,omitempty"`
	FAQs           []FAQItem      `json:"faqs,omitempty"`
	Gallery        []GalleryItem  `json:"gallery,omitempty"`
	Weather        []WeatherMonth `json:"weather,omitempty"`
	Festivals      []Festival     `json:"festivals,omitempty"`
	RelatedPackage string         `json:"relatedPackage,omitempty"`
}
