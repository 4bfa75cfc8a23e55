// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CompanyProfileTable represents the 'company_profile' table
type CompanyProfileTable struct {
	Table       string
	ID          string
	Name        string
	Address     string
	LogoURL     string
	Vision      string
	Mission     string
	Description string
	Phone       string
	Email       string
	LinkedInURL string
	Latitude    string
	Longitude   string
	UpdatedAt   string
	UpdatedBy   string
}

// CompanyProfile is the schema definition for company_profile
var CompanyProfile = CompanyProfileTable{
	Table:       "company_profile",
	ID:          "id",
	Name:        "name",
	Address:     "address",
	LogoURL:     "logo_url",
	Vision:      "vision",
	Mission:     "mission",
	Description: "description",
	Phone:       "phone",
	Email:       "email",
	LinkedInURL: "linkedin_url",
	Latitude:    "latitude",
	Longitude:   "longitude",
	UpdatedAt:   "updated_at",
	UpdatedBy:   "updated_by",
}

// TeamMemberTable represents the 'team_member' table
type TeamMemberTable struct {
	Table           string
	ID              string
	FullName        string
	Position        string
	Bio             string
	PhotoURL        string
	Skills          string
	Certifications  string
	Specializations string
	YearsExperience string
	LinkedInURL     string
	GithubURL       string
	Active          string
	SortOrder       string
	CreatedAt       string
	UpdatedAt       string
}

// TeamMember is the schema definition for team_member
var TeamMember = TeamMemberTable{
	Table:           "team_member",
	ID:              "id",
	FullName:        "full_name",
	Position:        "position",
	Bio:             "bio",
	PhotoURL:        "photo_url",
	Skills:          "skills",
	Certifications:  "certifications",
	Specializations: "specializations",
	YearsExperience: "years_experience",
	LinkedInURL:     "linkedin_url",
	GithubURL:       "github_url",
	Active:          "active",
	SortOrder:       "sort_order",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",
}

func (t TeamMemberTable) Columns() []string {
	return []string{
		t.ID, t.FullName, t.Position, t.Bio, t.PhotoURL, t.Skills, t.Certifications, t.Specializations,
		t.YearsExperience, t.LinkedInURL, t.GithubURL, t.Active, t.SortOrder, t.CreatedAt, t.UpdatedAt,
	}
}

// FeedbackTable represents the 'feedback' table
type FeedbackTable struct {
	Table        string
	ID           string
	VisitorName  string
	VisitorEmail string
	Message      string
	IPAddress    string
	UserAgent    string
	IsDisplayed  string
	IsRead       string
	CreatedAt    string
}

// Feedback is the schema definition for feedback
var Feedback = FeedbackTable{
	Table:        "feedback",
	ID:           "id",
	VisitorName:  "visitor_name",
	VisitorEmail: "visitor_email",
	Message:      "message",
	IPAddress:    "ip_address",
	UserAgent:    "user_agent",
	IsDisplayed:  "is_displayed",
	IsRead:       "is_read",
	CreatedAt:    "created_at",
}

func (t FeedbackTable) Columns() []string {
	return []string{t.ID, t.VisitorName, t.VisitorEmail, t.Message, t.IPAddress, t.UserAgent, t.IsDisplayed, t.IsRead, t.CreatedAt}
}

// MediaTable represents the 'media' table
type MediaTable struct {
	Table        string
	ID           string
	MediaType    string
	Title        string
	Description  string
	MediaURL     string
	EmbedCode    string
	ThumbnailURL string
	Active       string
	SortOrder    string
	CreatedAt    string
	UpdatedAt    string
}

// Media is the schema definition for media
var Media = MediaTable{
	Table:        "media",
	ID:           "id",
	MediaType:    "media_type",
	Title:        "title",
	Description:  "description",
	MediaURL:     "media_url",
	EmbedCode:    "embed_code",
	ThumbnailURL: "thumbnail_url",
	Active:       "active",
	SortOrder:    "sort_order",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

func (t MediaTable) Columns() []string {
	return []string{t.ID, t.MediaType, t.Title, t.Description, t.MediaURL, t.EmbedCode, t.ThumbnailURL, t.Active, t.SortOrder, t.CreatedAt, t.UpdatedAt}
}

// ContactCTATable represents the 'contact_cta' table
type ContactCTATable struct {
	Table       string
	ID          string
	CTAType     string
	Title       string
	URL         string
	Contact     string
	Description string
	Active      string
	SortOrder   string
	CreatedAt   string
	UpdatedAt   string
}

// ContactCTA is the schema definition for contact_cta
var ContactCTA = ContactCTATable{
	Table:       "contact_cta",
	ID:          "id",
	CTAType:     "cta_type",
	Title:       "title",
	URL:         "url",
	Contact:     "contact",
	Description: "description",
	Active:      "active",
	SortOrder:   "sort_order",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t ContactCTATable) Columns() []string {
	return []string{t.ID, t.CTAType, t.Title, t.URL, t.Contact, t.Description, t.Active, t.SortOrder, t.CreatedAt, t.UpdatedAt}
}

// SystemSettingTable represents the 'system_setting' table
type SystemSettingTable struct {
	Table       string
	Key         string
	Value       string
	ValueType   string
	Description string
	CreatedAt   string
	UpdatedAt   string
	UpdatedBy   string
}

// SystemSetting is the schema definition for system_setting
var SystemSetting = SystemSettingTable{
	Table:       "system_setting",
	Key:         "setting_key",
	Value:       "setting_value",
	ValueType:   "value_type",
	Description: "description",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
	UpdatedBy:   "updated_by",
}

func (t SystemSettingTable) Columns() []string {
	return []string{t.Key, t.Value, t.ValueType, t.Description, t.UpdatedAt, t.UpdatedBy}
}
