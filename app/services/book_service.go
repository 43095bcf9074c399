package services

import (
	"fmt"

	"book-review/app/models"
	"book-review/app/repo"
)

type BookService struct{ books *repo.BookRepository }

func NewBookService(books *repo.BookRepository) *BookService { return &BookService{books: books} }

// ListAll returns the full catalog in insertion order.
func (s *BookService) ListAll() ([]models.Book, error) {
	books, err := s.books.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []models.Book{}
	}
	return books, nil
}

// Add inserts one catalog entry. There is no HTTP surface for this; it
// exists for out-of-band provisioning (the bookseed tool).
func (s *BookService) Add(title, imageURL, summary string) (uint, error) {
	if title == "" {
		return 0, ErrInvalidInput
	}
	b := models.Book{Title: title, ImageURL: imageURL, Summary: summary}
	if err := s.books.Create(&b); err != nil {
		return 0, fmt.Errorf("create book: %w", err)
	}
	return b.ID, nil
}
