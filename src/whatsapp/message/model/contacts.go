package whatsapp_message_model

// Contact is one entry of a contacts message payload.
type Contact struct {
	Name      ContactName      `json:"name" validate:"required"`
	Addresses []ContactAddress `json:"addresses,omitempty"`
	Birthday  string           `json:"birthday,omitempty" example:"1990-04-21"`
	Emails    []ContactEmail   `json:"emails,omitempty"`
	Org       *ContactOrg      `json:"org,omitempty"`
	Phones    []ContactPhone   `json:"phones,omitempty"`
	Urls      []ContactUrl     `json:"urls,omitempty"`
}

type ContactName struct {
	FormattedName string `json:"formatted_name" validate:"required" example:"Ada Lovelace"`
	FirstName     string `json:"first_name,omitempty" example:"Ada"`
	LastName      string `json:"last_name,omitempty" example:"Lovelace"`
	MiddleName    string `json:"middle_name,omitempty"`
	Suffix        string `json:"suffix,omitempty"`
	Prefix        string `json:"prefix,omitempty"`
}

type ContactAddress struct {
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Zip         string `json:"zip,omitempty"`
	Country     string `json:"country,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Type        string `json:"type,omitempty" example:"WORK"`
}

type ContactEmail struct {
	Email string `json:"email,omitempty" example:"ada@example.com"`
	Type  string `json:"type,omitempty" example:"WORK"`
}

type ContactOrg struct {
	Company    string `json:"company,omitempty"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
}

type ContactPhone struct {
	Phone string `json:"phone,omitempty" example:"+55 11 99999-9999"`
	Type  string `json:"type,omitempty" example:"CELL"`
	WaID  string `json:"wa_id,omitempty" example:"5511999999999"`
}

type ContactUrl struct {
	Url  string `json:"url,omitempty"`
	Type string `json:"type,omitempty"`
}
