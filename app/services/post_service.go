package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"chatter/app/models"
	"chatter/app/repositories"
)

// Like/unlike response messages.
const (
	MsgPostLiked   = "Post liked"
	MsgPostUnliked = "Post unliked"
)

// PostService handles business logic for posts: listing and sorting,
// creation, the like set, the comment log, and deletion.
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// ListPosts retrieves all posts, sorted by the given key. An empty key keeps
// store order. Valid keys are "date", "comments" and "likes", matched
// case-insensitively; ties on count are broken by recency.
func (s *PostService) ListPosts(sortBy string) ([]*models.Post, error) {
	posts, err := s.postRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if sortBy == "" {
		return posts, nil
	}

	switch strings.ToLower(sortBy) {
	case "date":
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Timestamp.After(posts[j].Timestamp)
		})
	case "comments":
		sort.SliceStable(posts, func(i, j int) bool {
			if len(posts[i].Comments) == len(posts[j].Comments) {
				return posts[i].Timestamp.After(posts[j].Timestamp)
			}
			return len(posts[i].Comments) > len(posts[j].Comments)
		})
	case "likes":
		sort.SliceStable(posts, func(i, j int) bool {
			if len(posts[i].Likes) == len(posts[j].Likes) {
				return posts[i].Timestamp.After(posts[j].Timestamp)
			}
			return len(posts[i].Likes) > len(posts[j].Likes)
		})
	default:
		return nil, ErrInvalidSortKey
	}

	return posts, nil
}

// GetPost retrieves a post by ID.
func (s *PostService) GetPost(id string) (*models.Post, error) {
	if !models.IsValidID(id) {
		return nil, ErrInvalidID
	}
	return s.postRepo.FindByID(id)
}

// CreatePost validates the post and its owner, then persists it. The owner
// must be an existing user; the creation timestamp is assigned at insert
// time.
func (s *PostService) CreatePost(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if !models.IsValidID(post.Owner) {
		return ErrInvalidOwnerID
	}

	if _, err := s.userRepo.FindByID(post.Owner); err != nil {
		if err == repositories.ErrNotFound {
			return ErrOwnerNotFound
		}
		return err
	}

	return s.postRepo.Insert(post)
}

// LikePost adds userID to the post's like set when add is true, or removes
// it otherwise. Both directions are idempotent. A post's owner may not like
// their own post.
func (s *PostService) LikePost(postID, userID string, add bool) (string, error) {
	if !models.IsValidID(userID) || !models.IsValidID(postID) {
		return "", ErrInvalidID
	}

	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return "", err
	}

	if post.Owner == userID {
		return "", ErrSelfLike
	}

	if _, err := s.postRepo.UpdateLikes(postID, userID, add); err != nil {
		return "", err
	}

	if add {
		return MsgPostLiked, nil
	}
	return MsgPostUnliked, nil
}

// CommentOnPost appends a timestamped comment to the post's comment log and
// returns the updated document.
func (s *PostService) CommentOnPost(postID, userID, text string) (*models.Post, error) {
	if !models.IsValidID(userID) {
		return nil, ErrInvalidID
	}
	if !models.IsValidID(postID) {
		return nil, ErrInvalidID
	}
	if text == "" {
		return nil, ErrEmptyComment
	}

	return s.postRepo.AppendComment(postID, models.Comment{
		UserID:    userID,
		Comment:   text,
		Timestamp: time.Now(),
	})
}

// DeletePost deletes a post by ID and returns the deleted document.
func (s *PostService) DeletePost(id string) (*models.Post, error) {
	if !models.IsValidID(id) {
		return nil, ErrInvalidID
	}
	return s.postRepo.Delete(id)
}
