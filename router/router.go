package router

import (
	"net/http"

	"book-review/app/controllers"
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, bookCtrl *controllers.BookController, reviewCtrl *controllers.ReviewController) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", httpCtrl.Root)

	// accounts
	mux.HandleFunc("POST /register", authCtrl.Register)
	mux.HandleFunc("POST /login", authCtrl.Login)

	// catalog
	mux.HandleFunc("GET /books", bookCtrl.List)

	// reviews
	mux.HandleFunc("GET /books/{id}/reviews", reviewCtrl.ListForBook)
	mux.HandleFunc("POST /books/{id}/reviews", reviewCtrl.Post)
	mux.HandleFunc("PUT /reviews/{id}", reviewCtrl.Edit)
	mux.HandleFunc("DELETE /reviews/{id}", reviewCtrl.Delete)

	return mux
}
