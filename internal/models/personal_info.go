package models

// PersonalInfo is supplied by the applicant with every request.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Field is one named personal-info value.
type Field struct {
	Key   string
	Value string
}

// Fields returns every field in request order, including empty ones.
func (p PersonalInfo) Fields() []Field {
	return []Field{
		{Key: "name", Value: p.Name},
		{Key: "email", Value: p.Email},
		{Key: "phone", Value: p.Phone},
		{Key: "address", Value: p.Address},
		{Key: "linkedin", Value: p.LinkedIn},
		{Key: "website", Value: p.Website},
	}
}

func (p PersonalInfo) IsEmpty() bool {
	for _, f := range p.Fields() {
		if f.Value != "" {
			return false
		}
	}
	return true
}
