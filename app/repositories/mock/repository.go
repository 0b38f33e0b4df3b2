package mock

import (
	"sync"

	"chatter/app/models"
	"chatter/app/repositories"
)

type PostRepository struct {
	posts map[string]*models.Post
	order []string
	mutex sync.RWMutex
}

type UserRepository struct {
	users map[string]*models.User
	mutex sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.Post),
	}
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]*models.User),
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.Post)
	m.order = nil
}

// PostRepository implementation

func (m *PostRepository) Insert(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.BeforeCreate()
	copied := clonePost(post)
	m.posts[post.ID] = copied
	m.order = append(m.order, post.ID)
	return nil
}

func (m *PostRepository) FindByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return clonePost(post), nil
}

func (m *PostRepository) FindAll() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := []*models.Post{}
	for _, id := range m.order {
		posts = append(posts, clonePost(m.posts[id]))
	}
	return posts, nil
}

func (m *PostRepository) UpdateLikes(id, userID string, add bool) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	if add {
		post.AddLike(userID)
	} else {
		post.RemoveLike(userID)
	}
	return clonePost(post), nil
}

func (m *PostRepository) AppendComment(id string, comment models.Comment) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	post.AddComment(comment)
	return clonePost(post), nil
}

func (m *PostRepository) Delete(id string) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	delete(m.posts, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return clonePost(post), nil
}

// UserRepository implementation

func (m *UserRepository) Insert(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user.BeforeCreate()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	m.users[user.ID] = cloneUser(user)
	return nil
}

func (m *UserRepository) FindByID(id string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return cloneUser(user), nil
}

func (m *UserRepository) FindByEmail(email string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, repositories.ErrNotFound
}

// clonePost deep-copies a post so callers cannot mutate stored state, which
// mirrors the round trip through the real store.
func clonePost(p *models.Post) *models.Post {
	copied := *p
	copied.Comments = append([]models.Comment{}, p.Comments...)
	copied.Likes = append([]string{}, p.Likes...)
	return &copied
}

func cloneUser(u *models.User) *models.User {
	copied := *u
	return &copied
}
