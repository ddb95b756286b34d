package services

import (
	"errors"
	"testing"

	"voyago/internal/models/db_models"
	"voyago/pkg/utils"
)

func TestCreatePostDefaults(t *testing.T) {
	svc := NewBlogService(newTestStore())

	post, err := svc.CreatePost("Admin", db_models.BlogPost{Title: "Monsoon in Kerala"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.ID == "" {
		t.Error("id not generated")
	}
	if post.Slug != "monsoon-in-kerala" {
		t.Errorf("slug = %q", post.Slug)
	}
	if post.Status != db_models.BlogDraft {
		t.Errorf("status = %q, want Draft", post.Status)
	}
	if post.Date == "" {
		t.Error("date not set")
	}
}

func TestPublishedPostsOnly(t *testing.T) {
	s := newTestStore()
	svc := NewBlogService(s)

	posts := []db_models.BlogPost{
		{ID: "blog-1", Title: "Draft Post", Slug: "draft-post", Status: db_models.BlogDraft},
		{ID: "blog-2", Title: "Live Post", Slug: "live-post", Status: db_models.BlogPublished},
	}
	for _, p := range posts {
		if err := s.BlogPosts.Add(p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	published := svc.ListPublishedPosts()
	if len(published) != 1 || published[0].ID != "blog-2" {
		t.Errorf("published = %+v", published)
	}
	if got := len(svc.ListAllPosts()); got != 2 {
		t.Errorf("all posts = %d, want 2", got)
	}

	// Drafts are invisible through the public slug lookup.
	if _, err := svc.GetPublishedPostBySlug("draft-post"); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("draft visible via public lookup: %v", err)
	}
	if _, err := svc.GetPublishedPostBySlug("live-post"); err != nil {
		t.Errorf("published post lookup: %v", err)
	}
}

func TestUpdatePostKeepsSnapshotForRevert(t *testing.T) {
	s := newTestStore()
	svc := NewBlogService(s)

	created, err := svc.CreatePost("Admin", db_models.BlogPost{Title: "Original Title"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	created.Title = "Edited Title"
	if _, err := svc.UpdatePost("Admin", created); err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}

	entry := s.Activity.List()[0]
	if err := s.RevertActivity(entry.ID); err != nil {
		t.Fatalf("RevertActivity: %v", err)
	}

	restored, _ := svc.GetPostByID(created.ID)
	if restored.Title != "Original Title" {
		t.Errorf("title after revert = %q", restored.Title)
	}
}
