package models

// Settings is the organization configuration kept in the local store.
type Settings struct {
	CompanyName    string `json:"companyName"`
	CompanyEmail   string `json:"companyEmail"`
	CompanyPhone   string `json:"companyPhone"`
	CompanyAddress string `json:"companyAddress"`
	Timezone       string `json:"timezone"`
	DateFormat     string `json:"dateFormat"`
	WeekStart      string `json:"weekStart"`

	// APIURL is used as the backend endpoint when none was set at build time.
	APIURL string `json:"apiUrl,omitempty"`
}

type SettingsPatch struct {
	CompanyName    *string
	CompanyEmail   *string
	CompanyPhone   *string
	CompanyAddress *string
	Timezone       *string
	DateFormat     *string
	WeekStart      *string
	APIURL         *string
}

func (p SettingsPatch) Apply(s Settings) Settings {
	setIf(&s.CompanyName, p.CompanyName)
	setIf(&s.CompanyEmail, p.CompanyEmail)
	setIf(&s.CompanyPhone, p.CompanyPhone)
	setIf(&s.CompanyAddress, p.CompanyAddress)
	setIf(&s.Timezone, p.Timezone)
	setIf(&s.DateFormat, p.DateFormat)
	setIf(&s.WeekStart, p.WeekStart)
	setIf(&s.APIURL, p.APIURL)
	return s
}
