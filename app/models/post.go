package models

import "time"

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = NewID()
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now()
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
	if p.Likes == nil {
		p.Likes = []string{}
	}
}

// AddLike inserts userID into the like set. Inserting a user that already
// liked the post is a no-op.
func (p *Post) AddLike(userID string) {
	for _, id := range p.Likes {
		if id == userID {
			return
		}
	}
	p.Likes = append(p.Likes, userID)
}

// RemoveLike removes userID from the like set if present.
func (p *Post) RemoveLike(userID string) {
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return
		}
	}
}

// AddComment appends a comment to the post's comment log. Insertion order is
// preserved; duplicates are allowed.
func (p *Post) AddComment(c Comment) {
	p.Comments = append(p.Comments, c)
}
