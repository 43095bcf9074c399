package initialize

import (
	"fmt"
	"net/http"

	"book-review/app/controllers"
	"book-review/app/db"
	"book-review/app/middleware"
	"book-review/app/models"
	"book-review/app/repo"
	"book-review/app/services"
	"book-review/config"
	"book-review/global"
	"book-review/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Router  http.Handler
	Users   *services.UserService
	Books   *services.BookService
	Reviews *services.ReviewService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = *cfg
	ApplyLogLevel(cfg.Log.Level)
	config.WatchLogLevel(ApplyLogLevel)

	// Connect DB
	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, Path: cfg.DB.Path, Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate. Any schema failure is fatal for startup.
	if err := gdb.AutoMigrate(&models.User{}, &models.Book{}, &models.Review{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	bookRepo := repo.NewBookRepository(gdb)
	reviewRepo := repo.NewReviewRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	bookSvc := services.NewBookService(bookRepo)
	reviewSvc := services.NewReviewService(reviewRepo, userSvc)

	// Controllers
	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(userSvc)
	bookCtrl := controllers.NewBookController(bookSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)

	// Router
	h := router.NewRouter(httpCtrl, authCtrl, bookCtrl, reviewCtrl)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Users: userSvc, Books: bookSvc, Reviews: reviewSvc}, nil
}
