package sql

import "github.com/wisesaying/wisesaying/wisesaying/say"

// TableName is the name of the table holding all sayings.
const TableName = "say"

// sayModel is the gorm mapping of the "say" table.
type sayModel struct {
	ID      int    `gorm:"column:id;primary_key"`
	Content string `gorm:"column:content;type:varchar(255);not null"`
	Author  string `gorm:"column:author;type:varchar(255);not null"`
}

func newSayModel(d say.Draft) sayModel {
	return sayModel{
		Content: d.Content,
		Author:  d.Author,
	}
}

// TableName sets the table name for the say model.
func (sayModel) TableName() string {
	return TableName
}

// Inflate converts the model into a domain saying.
func (m sayModel) Inflate() say.Say {
	return say.Say{
		ID:      m.ID,
		Content: m.Content,
		Author:  m.Author,
	}
}

func inflateAll(models []sayModel) []say.Say {
	sayings := make([]say.Say, len(models))
	for idx, m := range models {
		sayings[idx] = m.Inflate()
	}
	return sayings
}
