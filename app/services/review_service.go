package services

import (
	"errors"
	"fmt"

	"book-review/app/models"
	"book-review/app/repo"

	"gorm.io/gorm"
)

type ReviewService struct {
	reviews *repo.ReviewRepository
	users   *UserService
}

func NewReviewService(reviews *repo.ReviewRepository, users *UserService) *ReviewService {
	return &ReviewService{reviews: reviews, users: users}
}

func validateReviewInput(username string, rating int) error {
	if username == "" {
		return ErrInvalidInput
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidInput
	}
	return nil
}

// Post inserts a new review bound to the author resolved from username and
// returns the generated id. The book id is taken as given.
func (s *ReviewService) Post(username string, bookID uint, rating int, comment string) (uint, error) {
	if err := validateReviewInput(username, rating); err != nil {
		return 0, err
	}
	userID, err := s.users.ResolveID(username)
	if err != nil {
		return 0, err
	}
	rev := models.Review{UserID: userID, BookID: bookID, Rating: rating, Comment: comment}
	if err := s.reviews.Create(&rev); err != nil {
		return 0, fmt.Errorf("create review: %w", err)
	}
	return rev.ID, nil
}

// Edit updates rating and comment of the caller's own review. The ownership
// condition is part of the UPDATE itself; a zero affected-row count is then
// classified with a read so the caller can tell a missing review from
// somebody else's.
func (s *ReviewService) Edit(reviewID uint, username string, rating int, comment string) error {
	if err := validateReviewInput(username, rating); err != nil {
		return err
	}
	userID, err := s.users.ResolveID(username)
	if err != nil {
		return err
	}
	affected, err := s.reviews.UpdateOwned(reviewID, userID, rating, comment)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	if affected == 0 {
		return s.classifyMiss(reviewID)
	}
	return nil
}

// Delete removes the caller's own review under the same gate as Edit.
func (s *ReviewService) Delete(reviewID uint, username string) error {
	if username == "" {
		return ErrInvalidInput
	}
	userID, err := s.users.ResolveID(username)
	if err != nil {
		return err
	}
	affected, err := s.reviews.DeleteOwned(reviewID, userID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if affected == 0 {
		return s.classifyMiss(reviewID)
	}
	return nil
}

// ListForBook returns the book's reviews joined with their authors' current
// usernames. A book with no reviews yields an empty slice.
func (s *ReviewService) ListForBook(bookID uint) ([]repo.ReviewWithAuthor, error) {
	rows, err := s.reviews.ListForBook(bookID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if rows == nil {
		rows = []repo.ReviewWithAuthor{}
	}
	return rows, nil
}

func (s *ReviewService) classifyMiss(reviewID uint) error {
	if _, err := s.reviews.FindByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find review: %w", err)
	}
	return ErrForbidden
}
