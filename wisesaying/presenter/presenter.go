package presenter

import (
	"io"

	"github.com/wisesaying/wisesaying/wisesaying/presenter/json"
	"github.com/wisesaying/wisesaying/wisesaying/presenter/table"
	"github.com/wisesaying/wisesaying/wisesaying/presenter/template"
	"github.com/wisesaying/wisesaying/wisesaying/say"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter retrieves a Presenter that matches a CLI option. The template file is only used by the template presenter.
func GetPresenter(option Option, page say.Page, templateFile string) Presenter {
	switch option {
	case TablePresenter:
		return table.NewPresenter(page)
	case JSONPresenter:
		return json.NewPresenter(page)
	case TemplatePresenter:
		return template.NewPresenter(page, templateFile)
	default:
		return nil
	}
}
