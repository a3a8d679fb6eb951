package wisesaying

import (
	"fmt"

	"github.com/wagoodman/go-partybus"

	"github.com/wisesaying/wisesaying/internal/bus"
	"github.com/wisesaying/wisesaying/internal/log"
	"github.com/wisesaying/wisesaying/wisesaying/event"
	"github.com/wisesaying/wisesaying/wisesaying/say"
	"github.com/wisesaying/wisesaying/wisesaying/sayerr"
	"github.com/wisesaying/wisesaying/wisesaying/store"
)

// Service validates user input and coordinates a saying store, publishing an event for every change.
type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Store returns the store backing the service.
func (s *Service) Store() store.Store {
	return s.store
}

func (s *Service) Create(d say.Draft) (int, error) {
	d, err := validate(d)
	if err != nil {
		return 0, err
	}

	id, err := s.store.Create(d)
	if err != nil {
		return 0, fmt.Errorf("unable to create saying: %w", err)
	}
	log.Debugf("created saying id=%d", id)

	bus.Publish(partybus.Event{
		Type:  event.SayCreated,
		Value: say.New(id, d),
	})
	return id, nil
}

// FindByID returns the saying or a sayerr.NotFoundError.
func (s *Service) FindByID(id int) (*say.Say, error) {
	found, err := s.store.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch saying id=%d: %w", id, err)
	}
	if found == nil {
		return nil, sayerr.NotFoundError{ID: id}
	}
	return found, nil
}

func (s *Service) FindAll() ([]say.Say, error) {
	return s.store.List()
}

func (s *Service) Update(id int, d say.Draft) error {
	d, err := validate(d)
	if err != nil {
		return err
	}

	if err := s.store.Update(id, d); err != nil {
		return err
	}
	log.Debugf("updated saying id=%d", id)

	bus.Publish(partybus.Event{
		Type:  event.SayUpdated,
		Value: say.New(id, d),
	})
	return nil
}

func (s *Service) Delete(id int) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	log.Debugf("deleted saying id=%d", id)

	bus.Publish(partybus.Event{
		Type:  event.SayDeleted,
		Value: id,
	})
	return nil
}

// Build exports every saying to the store's durable form.
func (s *Service) Build() error {
	if err := s.store.Build(); err != nil {
		return fmt.Errorf("unable to build store: %w", err)
	}

	location := ""
	if l, ok := Unwrap(s.store).(store.Locator); ok {
		location = l.Location()
	}
	bus.Publish(partybus.Event{
		Type:   event.StoreBuilt,
		Source: location,
	})
	return nil
}

// Page returns the requested page of sayings matching the keyword over the given field(s).
func (s *Service) Page(keywordType say.KeywordType, keyword string, pageable say.Pageable) (*say.Page, error) {
	cond := say.NewSearchCondition(keywordType, keyword)
	page, err := s.store.Page(cond, say.NewPageable(pageable.PageNo, pageable.PageSize))
	if err != nil {
		return nil, fmt.Errorf("unable to page sayings: %w", err)
	}
	return page, nil
}

func validate(d say.Draft) (say.Draft, error) {
	d = d.Trimmed()
	if d.Author == "" {
		return d, sayerr.ErrBlankAuthor
	}
	if d.Content == "" {
		return d, sayerr.ErrBlankContent
	}
	return d, nil
}
