package routes

import (
	"chatter/app/config"
	"chatter/app/controllers"
	"chatter/app/middleware"
	"chatter/app/repositories"
	"chatter/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// Setup wires repositories, services and controllers onto the API router
// using the provided Badger DB. Post routes require a bearer token; the user
// routes issue them.
func Setup(db *badger.DB, cfg config.Config) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	postRepo := repositories.NewBadgerPostRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	authService := services.NewAuthService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)
	postService := services.NewPostService(postRepo, userRepo)

	authController := controllers.NewAuthController(authService)
	postController := controllers.NewPostController(postService)

	// API routes
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// User endpoints (unauthenticated)
	user := api.PathPrefix("/user").Subrouter()
	user.HandleFunc("/register", authController.Register).Methods("POST")
	user.HandleFunc("/login", authController.Login).Methods("POST")

	// Post endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.Use(middleware.RequireAuth(authService))
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}/like", postController.Like).Methods("PUT")
	posts.HandleFunc("/{id}/comment", postController.Comment).Methods("PUT")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")

	return router
}
