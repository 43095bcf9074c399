package repo

import (
	"book-review/app/models"

	"gorm.io/gorm"
)

type BookRepository struct{ db *gorm.DB }

func NewBookRepository(db *gorm.DB) *BookRepository { return &BookRepository{db: db} }

func (r *BookRepository) Create(b *models.Book) error { return r.db.Create(b).Error }

// ListAll returns the whole catalog in primary-key order. Result sets are
// assumed small, so the slice is materialized eagerly.
func (r *BookRepository) ListAll() ([]models.Book, error) {
	var books []models.Book
	err := r.db.Order("id").Find(&books).Error
	return books, err
}
