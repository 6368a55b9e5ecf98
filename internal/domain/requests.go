package domain

import "strings"

// Request bodies for the public form endpoints. Fields are deliberately
// unconstrained at binding time; required-field and email checks run in
// the usecase so every kind reports failures through the same shape.

// ContactRequest is a message from the site's contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (r *ContactRequest) ToSubmission() *FormSubmission {
	return &FormSubmission{
		Kind: KindContact,
		Fields: map[string]string{
			"name":    r.Name,
			"email":   r.Email,
			"phone":   r.Phone,
			"message": r.Message,
		},
	}
}

// QuoteRequest is a project quote enquiry.
type QuoteRequest struct {
	ProjectType string `json:"projectType"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	PlotSize    string `json:"plotSize"`
	Budget      string `json:"budget"`
	Timeline    string `json:"timeline"`
	Description string `json:"description"`
}

func (r *QuoteRequest) ToSubmission() *FormSubmission {
	return &FormSubmission{
		Kind: KindQuote,
		Fields: map[string]string{
			"projectType": r.ProjectType,
			"name":        r.Name,
			"email":       r.Email,
			"phone":       r.Phone,
			"location":    r.Location,
			"plotSize":    r.PlotSize,
			"budget":      r.Budget,
			"timeline":    r.Timeline,
			"description": r.Description,
		},
	}
}

// InternshipRequest is the legacy internship form.
type InternshipRequest struct {
	FullName   string   `json:"fullName"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	City       string   `json:"city"`
	Education  string   `json:"education"`
	StartDate  string   `json:"startDate"`
	Duration   string   `json:"duration"`
	Interests  []string `json:"interests"`
	Software   string   `json:"software"`
	Portfolio  string   `json:"portfolio"`
	Resume     string   `json:"resume"`
	Motivation string   `json:"motivation"`
	Mode       string   `json:"mode"`
	References string   `json:"references"`
}

func (r *InternshipRequest) ToSubmission() *FormSubmission {
	return &FormSubmission{
		Kind: KindInternship,
		Fields: map[string]string{
			"fullName":   r.FullName,
			"email":      r.Email,
			"phone":      r.Phone,
			"city":       r.City,
			"education":  r.Education,
			"startDate":  r.StartDate,
			"duration":   r.Duration,
			"interests":  strings.Join(r.Interests, ", "),
			"software":   r.Software,
			"portfolio":  r.Portfolio,
			"resume":     r.Resume,
			"motivation": r.Motivation,
			"mode":       r.Mode,
			"references": r.References,
		},
	}
}

// InternshipApplicationRequest is the current internship application form.
type InternshipApplicationRequest struct {
	FullName            string `json:"fullName"`
	Email               string `json:"email"`
	Institution         string `json:"institution"`
	PortfolioURL        string `json:"portfolioUrl"`
	OtherAttachments    string `json:"otherAttachments"`
	PreviousInternships string `json:"previousInternships"`
	InternshipBatch     string `json:"internshipBatch"`
	StartDate           string `json:"startDate"`
	InternshipDuration  string `json:"internshipDuration"`
}

func (r *InternshipApplicationRequest) ToSubmission() *FormSubmission {
	return &FormSubmission{
		Kind: KindInternshipApplication,
		Fields: map[string]string{
			"fullName":            r.FullName,
			"email":               r.Email,
			"institution":         r.Institution,
			"portfolioUrl":        r.PortfolioURL,
			"otherAttachments":    r.OtherAttachments,
			"previousInternships": r.PreviousInternships,
			"internshipBatch":     r.InternshipBatch,
			"startDate":           r.StartDate,
			"internshipDuration":  r.InternshipDuration,
		},
	}
}

// WorkApplicationRequest is a full-time position application.
type WorkApplicationRequest struct {
	FullName                 string `json:"fullName"`
	Email                    string `json:"email"`
	Institution              string `json:"institution"`
	YearOfGraduation         string `json:"yearOfGraduation"`
	AdditionalQualifications string `json:"additionalQualifications"`
	PreviousWorkExperience   string `json:"previousWorkExperience"`
	PortfolioLink            string `json:"portfolioLink"`
	OtherAttachments         string `json:"otherAttachments"`
}

func (r *WorkApplicationRequest) ToSubmission() *FormSubmission {
	return &FormSubmission{
		Kind: KindWorkApplication,
		Fields: map[string]string{
			"fullName":                 r.FullName,
			"email":                    r.Email,
			"institution":              r.Institution,
			"yearOfGraduation":         r.YearOfGraduation,
			"additionalQualifications": r.AdditionalQualifications,
			"previousWorkExperience":   r.PreviousWorkExperience,
			"portfolioLink":            r.PortfolioLink,
			"otherAttachments":         r.OtherAttachments,
		},
	}
}
