package store

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/creziapro/site/internal/domain"
)

// AddBlogPost stores a new post under a fresh id with the creation time
// stamped by the store.
func (s *Store) AddBlogPost(ctx context.Context, post domain.BlogPost) (domain.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.BlogPost{}, err
	}

	post.ID = uuid.NewString()
	post.CreatedAt = s.now()

	if err := s.put(ctx, blogPostKey(post.ID), post); err != nil {
		return domain.BlogPost{}, err
	}
	s.blogPosts[post.ID] = post
	return post, nil
}

// UpdateBlogPost merges patch over the stored record. CreatedAt never
// changes. Returns nil if id is unknown.
func (s *Store) UpdateBlogPost(ctx context.Context, id string, patch domain.BlogPostPatch) (*domain.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	post, ok := s.blogPosts[id]
	if !ok {
		return nil, nil
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Slug != nil {
		post.Slug = *patch.Slug
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.Author != nil {
		post.Author = *patch.Author
	}
	if patch.Published != nil {
		post.Published = *patch.Published
	}

	if err := s.put(ctx, blogPostKey(id), post); err != nil {
		return nil, err
	}
	s.blogPosts[id] = post
	return &post, nil
}

// DeleteBlogPost removes one post. Returns whether it existed.
func (s *Store) DeleteBlogPost(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return false, err
	}

	if _, ok := s.blogPosts[id]; !ok {
		return false, nil
	}
	if err := s.kv.Delete(ctx, blogPostKey(id)); err != nil {
		return false, err
	}
	delete(s.blogPosts, id)
	return true, nil
}

// ListBlogPosts returns posts newest first, optionally only published ones.
func (s *Store) ListBlogPosts(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	posts := make([]domain.BlogPost, 0, len(s.blogPosts))
	for _, post := range s.blogPosts {
		if publishedOnly && !post.Published {
			continue
		}
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
	return posts, nil
}
