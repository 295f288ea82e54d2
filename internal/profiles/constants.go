package profiles

// Closed enumerations for profile dropdown fields. Extraction prompts quote
// these lists verbatim so the model snaps free text onto an allowed value.

var LegalDesignations = []string{
	"501(c)(3) – Public Charity",
	"501(c)(3) – Private Foundation",
	"501(c)(4) – Social Welfare Organization",
	"501(c)(6) – Business League / Trade Association",
	"501(c)(7) – Social Club",
	"501(c)(19) – Veterans Organization",
	"501(c)(5) – Labor, Agricultural, or Horticultural Organization",
	"Fiscal Sponsor",
}

var PrimaryCauseAreas = []string{
	"Agriculture & Food Security",
	"Animal Welfare",
	"Arts & Culture",
	"Arts Education",
	"Civic Engagement & Community Leadership",
	"Community & Economic Development",
	"Disability Services & Accessibility",
	"Disaster Relief & Public Safety",
	"Education",
	"Environment & Conservation",
	"Health & Wellness",
	"Housing & Homelessness",
	"Human Rights & Civil Liberties",
	"Human Services",
	"Information & Communications",
	"International & Global Affairs",
	"Mental Health & Wellness",
	"Philanthropy & Volunteering",
	"Poverty Alleviation",
	"Public Policy & Advocacy",
	"Religion & Spiritual Development",
	"Science & Technology",
	"Seniors & Aging Services",
	"Social Science Research",
	"Sports, Recreation & Leisure",
	"Youth Development",
	"Other",
}

var Populations = []string{
	"Children & Youth",
	"Families",
	"Seniors / Elderly",
	"Women & Girls",
	"Men & Boys",
	"People Experiencing Homelessness",
	"People with Disabilities",
	"LGBTQ+ Communities",
	"Immigrants & Refugees",
	"Veterans & Military Families",
	"Indigenous / Native Communities",
	"Low-Income / Economically Disadvantaged Populations",
	"Racial & Ethnic Minorities",
	"Survivors of Domestic Violence / Abuse",
	"Patients / People with Chronic Illnesses",
	"Mental Health Communities",
	"Animals / Wildlife",
	"General Public / Community at Large",
	"Students / Educationally Underserved",
	"Artists & Creative Communities",
	"Other",
}

var GeographicFocusOptions = []string{
	"Local",
	"Regional",
	"National",
	"Global",
}
