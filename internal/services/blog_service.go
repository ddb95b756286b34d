package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"voyago/internal/models/db_models"
	"voyago/internal/store"
	"voyago/pkg/utils"
)

type BlogServiceInterface interface {
	ListPublishedPosts() []db_models.BlogPost
	GetPublishedPostBySlug(slug string) (db_models.BlogPost, error)
	ListAllPosts() []db_models.BlogPost
	GetPostByID(id string) (db_models.BlogPost, error)
	CreatePost(actor string, post db_models.BlogPost) (db_models.BlogPost, error)
	UpdatePost(actor string, post db_models.BlogPost) (db_models.BlogPost, error)
	DeletePost(actor, id string) error
}

type BlogService struct {
	store *store.Store
}

func NewBlogService(s *store.Store) BlogServiceInterface {
	return &BlogService{store: s}
}

func (b *BlogService) ListPublishedPosts() []db_models.BlogPost {
	all := b.store.BlogPosts.List()
	published := make([]db_models.BlogPost, 0, len(all))
	for _, post := range all {
		if post.Status == db_models.BlogPublished {
			published = append(published, post)
		}
	}
	return published
}

func (b *BlogService) GetPublishedPostBySlug(slug string) (db_models.BlogPost, error) {
	for _, post := range b.store.BlogPosts.List() {
		if post.Slug == slug && post.Status == db_models.BlogPublished {
			return post, nil
		}
	}
	return db_models.BlogPost{}, utils.ErrNotFound
}

func (b *BlogService) ListAllPosts() []db_models.BlogPost {
	return b.store.BlogPosts.List()
}

func (b *BlogService) GetPostByID(id string) (db_models.BlogPost, error) {
	return b.store.BlogPosts.Get(id)
}

func (b *BlogService) CreatePost(actor string, post db_models.BlogPost) (db_models.BlogPost, error) {
	if strings.TrimSpace(post.Title) == "" {
		return db_models.BlogPost{}, utils.ErrInvalidInput
	}

	if post.ID == "" {
		post.ID = "blog-" + uuid.New().String()
	}
	if post.Slug == "" {
		post.Slug = utils.Slugify(post.Title)
	}
	if post.Status == "" {
		post.Status = db_models.BlogDraft
	}
	if post.Date == "" {
		post.Date = utils.FormatBookingDate(time.Now())
	}

	if err := b.store.BlogPosts.Add(post); err != nil {
		return db_models.BlogPost{}, err
	}

	_, _ = b.store.RecordActivity(actor, "create",
		fmt.Sprintf("Created blog post %q", post.Title),
		db_models.TargetBlogPost, post.ID, nil)

	return post, nil
}

func (b *BlogService) UpdatePost(actor string, post db_models.BlogPost) (db_models.BlogPost, error) {
	previous, err := b.store.BlogPosts.Get(post.ID)
	if err != nil {
		return db_models.BlogPost{}, err
	}

	if post.Slug == "" {
		post.Slug = utils.Slugify(post.Title)
	}

	if err := b.store.BlogPosts.Update(post); err != nil {
		return db_models.BlogPost{}, err
	}

	_, _ = b.store.RecordActivity(actor, "update",
		fmt.Sprintf("Updated blog post %q", post.Title),
		db_models.TargetBlogPost, post.ID, previous)

	return post, nil
}

func (b *BlogService) DeletePost(actor, id string) error {
	previous, err := b.store.BlogPosts.Get(id)
	if err != nil {
		return err
	}

	if err := b.store.BlogPosts.Delete(id); err != nil {
		return err
	}

	_, _ = b.store.RecordActivity(actor, "delete",
		fmt.Sprintf("Deleted blog post %q", previous.Title),
		db_models.TargetBlogPost, id, previous)

	return nil
}
