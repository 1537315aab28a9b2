package entities

// LocalizedText is a name or title in every supported language.
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

type Brand struct {
	Name   LocalizedText `json:"name"`
	Logo   any           `json:"logo,omitempty"`
	Status string        `json:"status"`
}

type BrandItem struct {
	Name    LocalizedText `json:"name"`
	BrandID int64         `json:"brand_id"`
	Image   any           `json:"image,omitempty"`
}

type City struct {
	Name      LocalizedText `json:"name"`
	CountryID int64         `json:"country_id"`
	StateID   *int64        `json:"state_id,omitempty"`
	Status    string        `json:"status"`
}

type State struct {
	Name      LocalizedText `json:"name"`
	CountryID int64         `json:"country_id"`
	Status    string        `json:"status"`
}

type Region struct {
	Name   LocalizedText `json:"name"`
	CityID int64         `json:"city_id"`
	Status string        `json:"status,omitempty"`
}

type Category struct {
	Name     LocalizedText `json:"name"`
	ParentID *int64        `json:"parent_id,omitempty"`
	Image    any           `json:"image,omitempty"`
	Status   string        `json:"status"`
}

type Nationality struct {
	Name LocalizedText `json:"name"`
	Code string        `json:"code"`
}

type Role struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Permissions any    `json:"permissions,omitempty"`
}

type Permission struct {
	Name      string `json:"name"`
	Group     string `json:"group"`
	GuardName string `json:"guard_name,omitempty"`
}

type Stock struct {
	ProductID int64   `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Note      string  `json:"note,omitempty"`
}

type Todo struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
}

type Attachment struct {
	Title       LocalizedText `json:"title"`
	File        any           `json:"file,omitempty"`
	Attachments any           `json:"attachments,omitempty"`
}

// ContentBlock is the rich content form with nested free-form blocks.
type ContentBlock struct {
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Sliders     any           `json:"sliders,omitempty"`
	Children    any           `json:"children,omitempty"`
}
