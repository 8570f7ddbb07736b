package models

type GenerateRequest struct {
	JobDescription     string       `json:"jobDescription"`
	CompanyName        string       `json:"companyName"`
	CustomInstructions string       `json:"customInstructions,omitempty"`
	PersonalInfo       PersonalInfo `json:"personalInfo"`
	Model              string       `json:"model,omitempty"`
}

// GeneratedLetter is the output of the generation step and the input of rendering.
type GeneratedLetter struct {
	CoverLetter  string       `json:"coverLetter"`
	PersonalInfo PersonalInfo `json:"personalInfo"`
	CompanyName  string       `json:"companyName"`
}

// RenderRequest keeps CoverLetter as a pointer so a missing field can be told apart
// from an empty letter.
type RenderRequest struct {
	CoverLetter  *string       `json:"coverLetter"`
	CompanyName  string        `json:"companyName,omitempty"`
	PersonalInfo *PersonalInfo `json:"personalInfo,omitempty"`
}

type RenderResponse struct {
	CoverLetterFile string `json:"coverLetterFile"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	Traceback string `json:"traceback,omitempty"`
}
