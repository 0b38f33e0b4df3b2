package repositories

import (
	"chatter/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Insert persists a new post, assigning its identifier and timestamp.
func (r *BadgerPostRepository) Insert(post *models.Post) error {
	post.BeforeCreate()

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey(post.ID), data)
	})
}

// FindByID retrieves a post by ID
func (r *BadgerPostRepository) FindByID(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, postKey(id), &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindAll retrieves every post in store order. An empty store yields an
// empty slice, never nil, so the collection always encodes as a JSON array.
func (r *BadgerPostRepository) FindAll() ([]*models.Post, error) {
	posts := []*models.Post{}
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateLikes inserts userID into (add) or removes it from (remove) the
// post's like set inside a single update transaction, and returns the
// updated document. The mutation is idempotent.
func (r *BadgerPostRepository) UpdateLikes(id, userID string, add bool) (*models.Post, error) {
	var post models.Post

	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getEntity(txn, postKey(id), &post); err != nil {
			return err
		}

		if add {
			post.AddLike(userID)
		} else {
			post.RemoveLike(userID)
		}

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(id), data)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// AppendComment appends a comment to the post's comment log inside a single
// update transaction and returns the updated document.
func (r *BadgerPostRepository) AppendComment(id string, comment models.Comment) (*models.Post, error) {
	var post models.Post

	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getEntity(txn, postKey(id), &post); err != nil {
			return err
		}

		post.AddComment(comment)

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(id), data)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post by ID and returns the deleted document.
func (r *BadgerPostRepository) Delete(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getEntity(txn, postKey(id), &post); err != nil {
			return err
		}
		return txn.Delete(postKey(id))
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// getEntity loads and unmarshals one document, mapping a missing key to
// ErrNotFound.
func getEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, entity)
	})
}
