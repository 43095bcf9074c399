package controllers

import (
	"encoding/json"
	"net/http"

	"book-review/app/dto"
	"book-review/app/services"
)

type ReviewController struct{ Reviews *services.ReviewService }

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

func (c *ReviewController) ListForBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return
	}
	rows, err := c.Reviews.ListForBook(bookID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (c *ReviewController) Post(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid book id")
		return
	}
	var req dto.PostReviewRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	id, err := c.Reviews.Post(req.Username, bookID, req.Rating, req.Comment)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.PostReviewResponse{ReviewID: id})
}

func (c *ReviewController) Edit(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}
	var req dto.EditReviewRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Reviews.Edit(reviewID, req.Username, req.Rating, req.Comment); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "review updated"})
}

func (c *ReviewController) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid review id")
		return
	}
	var req dto.DeleteReviewRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Reviews.Delete(reviewID, req.Username); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "review deleted"})
}
