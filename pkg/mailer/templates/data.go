package templates

import "time"

// IDReviewData fills the id_review_requested templates sent to reviewers.
type IDReviewData struct {
	CompanyName string
	UserID      string
	UserName    string
	UserEmail   string // masked
	University  string
	ImageURL    string
	Notes       string
	SubmittedAt time.Time
}

// ProfileUpdatedData fills the profile_updated templates sent to the account owner.
type ProfileUpdatedData struct {
	CompanyName string
	Name        string
	Changed     []string
	SupportURL  string
	UpdatedAt   time.Time
}

// ToMap flattens template data into EmailJob.Data.
func (d IDReviewData) ToMap() map[string]any {
	return map[string]any{
		"CompanyName": d.CompanyName,
		"UserID":      d.UserID,
		"UserName":    d.UserName,
		"UserEmail":   d.UserEmail,
		"University":  d.University,
		"ImageURL":    d.ImageURL,
		"Notes":       d.Notes,
		"SubmittedAt": d.SubmittedAt.UTC().Format(time.RFC3339),
	}
}

func (d ProfileUpdatedData) ToMap() map[string]any {
	changed := make([]any, 0, len(d.Changed))
	for _, c := range d.Changed {
		changed = append(changed, c)
	}
	return map[string]any{
		"CompanyName": d.CompanyName,
		"Name":        d.Name,
		"Changed":     changed,
		"SupportURL":  d.SupportURL,
		"UpdatedAt":   d.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
