package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chatter/app/models"
	"chatter/app/repositories"
	"chatter/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

type createPostRequest struct {
	Title       string `json:"postTitle"`
	Owner       string `json:"postOwner"`
	Description string `json:"postDescription"`
}

type likeRequest struct {
	UserID  string `json:"userId"`
	LikeAdd bool   `json:"likeAdd"`
	// Accepted for interface compatibility; only LikeAdd is consulted.
	LikeRemove bool `json:"likeRemove"`
}

type commentRequest struct {
	UserID  string `json:"userId"`
	Comment string `json:"comment"`
}

// Index handles listing all posts, optionally sorted by the sortBy query
// parameter.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts(r.URL.Query().Get("sortBy"))
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, posts)
}

// Show handles fetching a single post by its path id.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPost(mux.Vars(r)["id"])
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}
	pc.sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new post. The created document is not echoed
// back; a confirmation message is returned instead.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post := req.toModel()
	if err := pc.postService.CreatePost(post); err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, http.StatusCreated, map[string]string{"message": "Post created."})
}

// Like handles adding the caller-specified user to a post's like set when
// likeAdd is true, and removing it otherwise.
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	message, err := pc.postService.LikePost(mux.Vars(r)["id"], req.UserID, req.LikeAdd)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, http.StatusOK, map[string]string{"message": message})
}

// Comment handles appending a comment to a post, returning the updated
// document.
func (pc *PostController) Comment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CommentOnPost(mux.Vars(r)["id"], req.UserID, req.Comment)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, http.StatusOK, post)
}

// Delete handles deleting a post, echoing the deleted document back.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.DeletePost(mux.Vars(r)["id"])
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Post deleted",
		"deletedPost": post,
	})
}

func (r createPostRequest) toModel() *models.Post {
	return &models.Post{
		Title:       r.Title,
		Owner:       r.Owner,
		Description: r.Description,
	}
}

// Helper methods for consistent response handling

func (pc *PostController) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (pc *PostController) sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// sendServiceError maps service errors onto HTTP status codes.
func (pc *PostController) sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidPayload),
		errors.Is(err, services.ErrInvalidID),
		errors.Is(err, services.ErrInvalidSortKey),
		errors.Is(err, services.ErrInvalidOwnerID),
		errors.Is(err, services.ErrOwnerNotFound),
		errors.Is(err, services.ErrEmptyComment):
		pc.sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrSelfLike):
		pc.sendError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, repositories.ErrNotFound):
		pc.sendError(w, "Post not found", http.StatusNotFound)
	default:
		pc.sendError(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
