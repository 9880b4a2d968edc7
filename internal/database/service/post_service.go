package service

import (
	"errors"
	"log/slog"

	"github.com/graphblog/api/internal/database/models"
	"github.com/graphblog/api/internal/database/repository"
)

// PostService defines the interface for post CRUD. Mutations enforce
// authorship; reads are public.
type PostService interface {
	ListPosts() ([]models.Post, error)
	GetPost(id uint) (*models.Post, error)
	PostsByAuthor(authorID uint) ([]models.Post, error)
	CreatePost(authorID uint, title, body, image string) (*models.Post, error)
	UpdatePost(currentUserID, postID uint, title, body, image string) (*models.Post, error)
	RemovePost(currentUserID, postID uint) error
}

type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// NewPostService creates a new post service instance
func NewPostService(postRepo repository.PostRepository, logger *slog.Logger) PostService {
	return &postService{
		postRepo: postRepo,
		logger:   logger,
	}
}

func (s *postService) ListPosts() ([]models.Post, error) {
	return s.postRepo.FindAll()
}

func (s *postService) GetPost(id uint) (*models.Post, error) {
	return s.postRepo.FindByID(id)
}

func (s *postService) PostsByAuthor(authorID uint) ([]models.Post, error) {
	return s.postRepo.FindByAuthorID(authorID)
}

func (s *postService) CreatePost(authorID uint, title, body, image string) (*models.Post, error) {
	post := &models.Post{
		Title:    title,
		Body:     body,
		Image:    image,
		AuthorID: authorID,
	}

	if err := s.postRepo.Create(post); err != nil {
		s.logger.Error("❌ [PostService] Failed to create post", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [PostService] Post created", "post_id", post.ID, "author_id", authorID)
	return post, nil
}

func (s *postService) UpdatePost(currentUserID, postID uint, title, body, image string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != currentUserID {
		s.logger.Warn("⚠️ [PostService] Update by non-author", "post_id", postID, "user_id", currentUserID)
		return nil, ErrNotPostAuthor
	}

	// Full replace of the mutable fields, not a partial merge.
	post.Title = title
	post.Body = body
	post.Image = image

	if err := s.postRepo.Update(post); err != nil {
		s.logger.Error("❌ [PostService] Failed to update post", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [PostService] Post updated", "post_id", postID)
	return post, nil
}

func (s *postService) RemovePost(currentUserID, postID uint) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return err
	}

	if post.AuthorID != currentUserID {
		s.logger.Warn("⚠️ [PostService] Removal by non-author", "post_id", postID, "user_id", currentUserID)
		return ErrNotPostAuthor
	}

	if err := s.postRepo.Delete(postID); err != nil {
		s.logger.Error("❌ [PostService] Failed to delete post", "error", err)
		return err
	}

	s.logger.Info("✅ [PostService] Post removed", "post_id", postID)
	return nil
}

// Service errors
var (
	ErrNotPostAuthor = errors.New("not the author of this post")
)
