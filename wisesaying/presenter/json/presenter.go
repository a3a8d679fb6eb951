package json

import (
	"encoding/json"
	"io"

	"github.com/wisesaying/wisesaying/wisesaying/presenter/models"
	"github.com/wisesaying/wisesaying/wisesaying/say"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	page say.Page
}

// NewPresenter creates a new JSON presenter
func NewPresenter(page say.Page) *Presenter {
	return &Presenter{
		page: page,
	}
}

// Present creates a JSON-based reporting
func (pres *Presenter) Present(output io.Writer) error {
	doc := models.NewDocument(pres.page)

	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(&doc)
}
