package models

import "github.com/wisesaying/wisesaying/wisesaying/say"

// Document is the rendering of a page of sayings handed to the json and template presenters.
type Document struct {
	Sayings    []say.Say `json:"sayings"`
	PageNo     int       `json:"pageNo"`
	PageSize   int       `json:"pageSize"`
	TotalCount int       `json:"totalCount"`
	TotalPages int       `json:"totalPages"`
}

func NewDocument(page say.Page) Document {
	sayings := page.Content
	if sayings == nil {
		// always render a list, never null
		sayings = []say.Say{}
	}
	return Document{
		Sayings:    sayings,
		PageNo:     page.PageNo,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages(),
	}
}
