package remote

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLStore writes the two tables directly over a MySQL connection.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(dsn string) (*SQLStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open mysql connection")
	}
	return &SQLStore{db: db}, nil
}

// NewSQLStoreWithDB wraps an existing connection, mainly for tests.
func NewSQLStoreWithDB(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Migrate creates the chapters and sections tables when missing.
func (s *SQLStore) Migrate() error {
	return s.db.AutoMigrate(&ChapterRow{}, &SectionRow{})
}

func (s *SQLStore) UpsertChapter(ctx context.Context, row ChapterRow) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	return errors.Wrapf(err, "upsert chapter %s", row.ID)
}

func (s *SQLStore) UpsertSection(ctx context.Context, row SectionRow) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	return errors.Wrapf(err, "upsert section %d of %s", row.Number, row.ChapterID)
}
