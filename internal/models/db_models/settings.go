package db_models

// Settings groups are singleton-per-key records replaced wholesale on save.

type CompanyProfile struct {
	Name         string `json:"name"`
	Tagline      string `json:"tagline,omitempty"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Logo         string `json:"logo,omitempty"`
	BaseCurrency string `json:"baseCurrency"`
}

type EmailSettings struct {
	SMTPHost    string `json:"smtpHost"`
	SMTPPort    int    `json:"smtpPort"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	FromAddress string `json:"fromAddress"`
	FromName    string `json:"fromName,omitempty"`
	UseSSL      bool   `json:"useSSL"`
}

type AISettings struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	APIKey   string `json:"apiKey,omitempty"`
}

type SeoSettings struct {
	SiteTitle       string   `json:"siteTitle"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	OGImage         string   `json:"ogImage,omitempty"`
}

type SitePage struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Visible bool   `json:"visible"`
}

type PageSettings struct {
	HeroHeading    string     `json:"heroHeading,omitempty"`
	HeroSubheading string     `json:"heroSubheading,omitempty"`
	HeroImage      string     `json:"heroImage,omitempty"`
	Pages          []SitePage `json:"pages,omitempty"`
}

// AdminAccount is the single back-office login. PasswordHash is bcrypt; the
// plaintext never leaves the auth service.
type AdminAccount struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// SettingsState bundles every settings group for snapshot export/import.
type SettingsState struct {
	Company CompanyProfile `json:"company"`
	Email   EmailSettings  `json:"email"`
	AI      AISettings     `json:"ai"`
	SEO     SeoSettings    `json:"seo"`
	Pages   PageSettings   `json:"pages"`
	Admin   AdminAccount   `json:"admin"`
}
