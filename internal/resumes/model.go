package resumes

import "time"

// Resume is a parsed resume stored in the shared collection.
type Resume struct {
	ID              string    `json:"id"`
	FileName        string    `json:"fileName"`
	FileType        string    `json:"fileType"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	LastJob         string    `json:"lastJob"`
	LastCompany     string    `json:"lastCompany"`
	YearsExperience string    `json:"yearsExperience"`
	TechnicalSkills []string  `json:"technicalSkills"`
	Education       string    `json:"education"`
	Summary         string    `json:"summary"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Input carries the caller-supplied resume fields for create.
type Input struct {
	FileName        string   `json:"fileName"`
	FileType        string   `json:"fileType"`
	FullName        string   `json:"fullName"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	LastJob         string   `json:"lastJob"`
	LastCompany     string   `json:"lastCompany"`
	YearsExperience string   `json:"yearsExperience"`
	TechnicalSkills []string `json:"technicalSkills"`
	Education       string   `json:"education"`
	Summary         string   `json:"summary"`
}

func (in Input) toResume(id string) Resume {
	skills := in.TechnicalSkills
	if skills == nil {
		skills = []string{}
	}
	return Resume{
		ID:              id,
		FileName:        in.FileName,
		FileType:        in.FileType,
		FullName:        in.FullName,
		Email:           in.Email,
		Phone:           in.Phone,
		LastJob:         in.LastJob,
		LastCompany:     in.LastCompany,
		YearsExperience: in.YearsExperience,
		TechnicalSkills: skills,
		Education:       in.Education,
		Summary:         in.Summary,
	}
}
