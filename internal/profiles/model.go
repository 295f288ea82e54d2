package profiles

import "time"

// Profile is the persisted organization profile, one row per owning user.
type Profile struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	// File reference triple. Either all three are set or all are empty.
	FileName   string `json:"fileName"`
	StorageKey string `json:"storageKey"`
	StorageURL string `json:"storageUrl"`

	OrganizationName      string   `json:"organizationName"`
	EIN                   string   `json:"ein"`
	MissionStatement      string   `json:"missionStatement"`
	YearFounded           string   `json:"yearFounded"`
	LocationServed        string   `json:"locationServed"`
	BiggestAccomplishment string   `json:"biggestAccomplishment"`
	OneSentenceSummary    string   `json:"oneSentenceSummary"`
	LegalDesignation      string   `json:"legalDesignation"`
	PrimaryCauseAreas     []string `json:"primaryCauseAreas"`
	Populations           []string `json:"populations"`
	GeographicalFocus     string   `json:"geographicalFocus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input carries the caller-editable profile fields for create and save.
type Input struct {
	FileName              string   `json:"fileName"`
	StorageKey            string   `json:"storageKey"`
	StorageURL            string   `json:"storageUrl"`
	OrganizationName      string   `json:"organizationName"`
	EIN                   string   `json:"ein"`
	MissionStatement      string   `json:"missionStatement"`
	YearFounded           string   `json:"yearFounded"`
	LocationServed        string   `json:"locationServed"`
	BiggestAccomplishment string   `json:"biggestAccomplishment"`
	OneSentenceSummary    string   `json:"oneSentenceSummary"`
	LegalDesignation      string   `json:"legalDesignation"`
	PrimaryCauseAreas     []string `json:"primaryCauseAreas"`
	Populations           []string `json:"populations"`
	GeographicalFocus     string   `json:"geographicalFocus"`
}

func (in Input) toProfile(id, userID string) Profile {
	causeAreas := in.PrimaryCauseAreas
	if causeAreas == nil {
		causeAreas = []string{}
	}
	populations := in.Populations
	if populations == nil {
		populations = []string{}
	}
	return Profile{
		ID:                    id,
		UserID:                userID,
		FileName:              in.FileName,
		StorageKey:            in.StorageKey,
		StorageURL:            in.StorageURL,
		OrganizationName:      in.OrganizationName,
		EIN:                   in.EIN,
		MissionStatement:      in.MissionStatement,
		YearFounded:           in.YearFounded,
		LocationServed:        in.LocationServed,
		BiggestAccomplishment: in.BiggestAccomplishment,
		OneSentenceSummary:    in.OneSentenceSummary,
		LegalDesignation:      in.LegalDesignation,
		PrimaryCauseAreas:     causeAreas,
		Populations:           populations,
		GeographicalFocus:     in.GeographicalFocus,
	}
}
