package repo

import (
	"book-review/app/models"

	"gorm.io/gorm"
)

type ReviewRepository struct{ db *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{db: db} }

// ReviewWithAuthor is one row of the reviews→users join.
type ReviewWithAuthor struct {
	ID       uint   `json:"id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Username string `json:"username"`
}

func (r *ReviewRepository) Create(rev *models.Review) error { return r.db.Create(rev).Error }

func (r *ReviewRepository) FindByID(id uint) (*models.Review, error) {
	var rev models.Review
	if err := r.db.Where("id = ?", id).First(&rev).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

// UpdateOwned changes rating and comment in a single conditional statement.
// The owner check rides in the WHERE clause, so the returned count is zero
// when the review is missing or owned by someone else.
func (r *ReviewRepository) UpdateOwned(id, userID uint, rating int, comment string) (int64, error) {
	res := r.db.Model(&models.Review{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"rating": rating, "comment": comment})
	return res.RowsAffected, res.Error
}

// DeleteOwned removes the review under the same ownership condition as
// UpdateOwned.
func (r *ReviewRepository) DeleteOwned(id, userID uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Review{})
	return res.RowsAffected, res.Error
}

// ListForBook joins each review of the book with its author's username,
// ordered by review id. Reviews without a matching user row drop out of the
// inner join.
func (r *ReviewRepository) ListForBook(bookID uint) ([]ReviewWithAuthor, error) {
	var rows []ReviewWithAuthor
	err := r.db.Model(&models.Review{}).
		Select("reviews.id, reviews.rating, reviews.comment, users.username").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.book_id = ?", bookID).
		Order("reviews.id").
		Scan(&rows).Error
	return rows, err
}

// CountAll reports the total number of review rows.
func (r *ReviewRepository) CountAll() (int64, error) {
	var count int64
	return count, r.db.Model(&models.Review{}).Count(&count).Error
}
