package controllers

import (
	"net/http"

	"book-review/app/services"
)

type BookController struct{ Books *services.BookService }

func NewBookController(books *services.BookService) *BookController {
	return &BookController{Books: books}
}

func (c *BookController) List(w http.ResponseWriter, r *http.Request) {
	books, err := c.Books.ListAll()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, books)
}
