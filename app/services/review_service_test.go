package services

import (
	"testing"

	"book-review/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewFixture struct {
	reviews    *ReviewService
	reviewRepo *repo.ReviewRepository
	books      *BookService
	bookID     uint
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	gdb := newTestDB(t)
	users := NewUserService(repo.NewUserRepository(gdb))
	books := NewBookService(repo.NewBookRepository(gdb))
	reviewRepo := repo.NewReviewRepository(gdb)
	reviews := NewReviewService(reviewRepo, users)

	_, err := users.Register("alice", "a@x.com", "pw1")
	require.NoError(t, err)
	_, err = users.Register("bob", "b@x.com", "pw2")
	require.NoError(t, err)
	bookID, err := books.Add("Dune", "", "Sand.")
	require.NoError(t, err)

	return &reviewFixture{reviews: reviews, reviewRepo: reviewRepo, books: books, bookID: bookID}
}

func (f *reviewFixture) rowCount(t *testing.T) int64 {
	t.Helper()
	count, err := f.reviewRepo.CountAll()
	require.NoError(t, err)
	return count
}

func TestPostReviewValidatesBeforeStorage(t *testing.T) {
	f := newReviewFixture(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := f.reviews.Post("alice", f.bookID, rating, "x")
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	_, err := f.reviews.Post("", f.bookID, 3, "x")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, f.rowCount(t), "rejected input must not touch storage")
}

func TestPostReviewUnknownUser(t *testing.T) {
	f := newReviewFixture(t)
	_, err := f.reviews.Post("nobody", f.bookID, 5, "great")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, f.rowCount(t))
}

func TestPostReview(t *testing.T) {
	f := newReviewFixture(t)

	id, err := f.reviews.Post("alice", f.bookID, 5, "great")
	require.NoError(t, err)
	assert.NotZero(t, id)

	rev, err := f.reviewRepo.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, f.bookID, rev.BookID)
	assert.Equal(t, 5, rev.Rating)
	assert.Equal(t, "great", rev.Comment)
}

func TestPostReviewAllowsSeveralPerUserPerBook(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.reviews.Post("alice", f.bookID, 5, "first")
	require.NoError(t, err)
	_, err = f.reviews.Post("alice", f.bookID, 2, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, int64(2), f.rowCount(t))
}

func TestEditReviewOwnershipGate(t *testing.T) {
	f := newReviewFixture(t)
	id, err := f.reviews.Post("alice", f.bookID, 5, "great")
	require.NoError(t, err)

	err = f.reviews.Edit(id, "bob", 3, "meh")
	assert.ErrorIs(t, err, ErrForbidden)

	rev, err := f.reviewRepo.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, 5, rev.Rating, "foreign edit must leave the row unchanged")
	assert.Equal(t, "great", rev.Comment)
}

func TestEditReviewByOwner(t *testing.T) {
	f := newReviewFixture(t)
	id, err := f.reviews.Post("alice", f.bookID, 5, "great")
	require.NoError(t, err)
	before, err := f.reviewRepo.FindByID(id)
	require.NoError(t, err)

	require.NoError(t, f.reviews.Edit(id, "alice", 4, "good"))

	after, err := f.reviewRepo.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, 4, after.Rating)
	assert.Equal(t, "good", after.Comment)
	assert.Equal(t, before.UserID, after.UserID)
	assert.Equal(t, before.BookID, after.BookID)
}

func TestEditReviewMisses(t *testing.T) {
	f := newReviewFixture(t)

	assert.ErrorIs(t, f.reviews.Edit(999, "alice", 4, "good"), ErrNotFound)
	assert.ErrorIs(t, f.reviews.Edit(999, "nobody", 4, "good"), ErrNotFound)
	assert.ErrorIs(t, f.reviews.Edit(1, "alice", 0, "good"), ErrInvalidInput)
}

func TestDeleteReview(t *testing.T) {
	f := newReviewFixture(t)
	id, err := f.reviews.Post("alice", f.bookID, 5, "great")
	require.NoError(t, err)

	assert.ErrorIs(t, f.reviews.Delete(id, "bob"), ErrForbidden)
	assert.Equal(t, int64(1), f.rowCount(t))

	require.NoError(t, f.reviews.Delete(id, "alice"))
	assert.Zero(t, f.rowCount(t))

	assert.ErrorIs(t, f.reviews.Delete(id, "alice"), ErrNotFound)
	assert.ErrorIs(t, f.reviews.Delete(id, ""), ErrInvalidInput)
}

func TestListReviewsForBook(t *testing.T) {
	f := newReviewFixture(t)
	otherBook, err := f.books.Add("Solaris", "", "Ocean.")
	require.NoError(t, err)

	id1, err := f.reviews.Post("alice", f.bookID, 5, "great")
	require.NoError(t, err)
	id2, err := f.reviews.Post("bob", f.bookID, 2, "not for me")
	require.NoError(t, err)
	_, err = f.reviews.Post("bob", otherBook, 4, "elsewhere")
	require.NoError(t, err)

	rows, err := f.reviews.ListForBook(f.bookID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, repo.ReviewWithAuthor{ID: id1, Rating: 5, Comment: "great", Username: "alice"}, rows[0])
	assert.Equal(t, repo.ReviewWithAuthor{ID: id2, Rating: 2, Comment: "not for me", Username: "bob"}, rows[1])
}

func TestListReviewsForBookEmpty(t *testing.T) {
	f := newReviewFixture(t)
	rows, err := f.reviews.ListForBook(f.bookID)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
