package repositories

import "chatter/app/models"

// PostRepository defines the interface for post data access. UpdateLikes and
// AppendComment are single-document atomic mutations that return the updated
// document.
type PostRepository interface {
	Insert(post *models.Post) error
	FindByID(id string) (*models.Post, error)
	FindAll() ([]*models.Post, error)
	UpdateLikes(id, userID string, add bool) (*models.Post, error)
	AppendComment(id string, comment models.Comment) (*models.Post, error)
	Delete(id string) (*models.Post, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Insert(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
}
