package sql

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/wisesaying/wisesaying/wisesaying/say"
	"github.com/wisesaying/wisesaying/wisesaying/sayerr"
	"github.com/wisesaying/wisesaying/wisesaying/store"
)

var (
	_ store.Store    = (*Store)(nil)
	_ store.Locator  = (*Store)(nil)
	_ store.Migrator = (*Store)(nil)
)

// Store holds an instance of the database connection
type Store struct {
	db  *gorm.DB
	cfg Config
}

// New connects to the configured database. The schema is created when it does not exist yet.
func New(cfg Config) (*Store, error) {
	db, err := open(cfg)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Location() string {
	return s.cfg.Location()
}

// Migrate creates the say table when it is missing.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&sayModel{}).Error; err != nil {
		return fmt.Errorf("unable to migrate say model: %w", err)
	}
	return nil
}

// Reset drops and recreates the say table, which also restarts id assignment at 1.
func (s *Store) Reset() error {
	if err := s.db.DropTableIfExists(&sayModel{}).Error; err != nil {
		return fmt.Errorf("unable to drop say table: %w", err)
	}
	if err := s.db.CreateTable(&sayModel{}).Error; err != nil {
		return fmt.Errorf("unable to create say table: %w", err)
	}
	return nil
}

// Create inserts a saying and returns the generated id.
func (s *Store) Create(d say.Draft) (int, error) {
	m := newSayModel(d)

	result := s.db.Create(&m)
	if result.Error != nil {
		return 0, fmt.Errorf("unable to add saying: %w", result.Error)
	}
	if result.RowsAffected != 1 {
		return 0, fmt.Errorf("unable to add saying (%d rows affected)", result.RowsAffected)
	}
	if m.ID == 0 {
		return 0, fmt.Errorf("unable to add saying: no id was generated")
	}
	return m.ID, nil
}

func (s *Store) Update(id int, d say.Draft) error {
	result := s.db.Model(&sayModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"content": d.Content,
		"author":  d.Author,
	})
	if result.Error != nil {
		return fmt.Errorf("unable to update saying=%d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return sayerr.NotFoundError{ID: id}
	}
	return nil
}

func (s *Store) Delete(id int) error {
	result := s.db.Where("id = ?", id).Delete(&sayModel{})
	if result.Error != nil {
		return fmt.Errorf("unable to delete saying=%d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return sayerr.NotFoundError{ID: id}
	}
	return nil
}

func (s *Store) GetByID(id int) (*say.Say, error) {
	var m sayModel
	err := s.db.Where("id = ?", id).First(&m).Error
	switch {
	case gorm.IsRecordNotFoundError(err):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("unable to fetch saying=%d: %w", id, err)
	}

	found := m.Inflate()
	return &found, nil
}

func (s *Store) List() ([]say.Say, error) {
	var models []sayModel
	if err := s.db.Order("id desc").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("unable to list sayings: %w", err)
	}
	return inflateAll(models), nil
}

func (s *Store) Page(cond say.SearchCondition, pageable say.Pageable) (*say.Page, error) {
	query := where(s.db.Model(&sayModel{}), cond)

	var count int
	if err := query.Count(&count).Error; err != nil {
		return nil, fmt.Errorf("unable to count sayings: %w", err)
	}

	var models []sayModel
	if pageable.Offset() < count {
		err := query.Order("id desc").Limit(pageable.PageSize).Offset(pageable.Offset()).Find(&models).Error
		if err != nil {
			return nil, fmt.Errorf("unable to fetch page=%d: %w", pageable.PageNo, err)
		}
	}

	return &say.Page{
		Content:    inflateAll(models),
		PageNo:     pageable.PageNo,
		PageSize:   pageable.PageSize,
		TotalCount: count,
	}, nil
}

// Build is a no-op: every statement is committed as it runs.
func (s *Store) Build() error {
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func where(query *gorm.DB, cond say.SearchCondition) *gorm.DB {
	switch {
	case cond.HasAuthorCondition() && cond.HasContentCondition():
		return query.Where("author LIKE ? OR content LIKE ?", contains(cond.AuthorContains), contains(cond.ContentContains))
	case cond.HasAuthorCondition():
		return query.Where("author LIKE ?", contains(cond.AuthorContains))
	case cond.HasContentCondition():
		return query.Where("content LIKE ?", contains(cond.ContentContains))
	}
	return query
}

func contains(keyword string) string {
	return "%" + keyword + "%"
}
