package models

import "time"

// Post is a single social post document. The JSON field names are the
// document shape the API exposes.
type Post struct {
	ID          string    `json:"id" validate:"-"`
	Title       string    `json:"postTitle" validate:"required,min=2,max=256"`
	Timestamp   time.Time `json:"postTimestamp"`
	Owner       string    `json:"postOwner" validate:"required"`
	Description string    `json:"postDescription" validate:"required,min=2,max=2048"`
	Comments    []Comment `json:"postComments" validate:"-"`
	Likes       []string  `json:"postLikes" validate:"-"`
}

// Comment is one entry in a post's append-only comment log.
type Comment struct {
	UserID    string    `json:"userId"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `json:"commentTimestamp"`
}

// User is an account that can own, like and comment on posts. Password holds
// a bcrypt hash and is never serialized.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username" validate:"required,min=3,max=256"`
	Email     string    `json:"email" validate:"required,email,min=6,max=256"`
	Password  string    `json:"-" validate:"required,min=6,max=1024"`
	CreatedAt time.Time `json:"createdAt"`
}
