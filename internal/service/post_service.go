package service

import (
	"context"
	"errors"
	"log"

	"blogql/internal/apperrors"
	"blogql/internal/models"
	"blogql/internal/repository"
	"blogql/internal/storage"
	"blogql/internal/validation"
)

const (
	// PageSize is the fixed number of posts per page.
	PageSize = 2

	// imageURLUnchanged is the placeholder clients send on updatePost when
	// the image should be kept.
	imageURLUnchanged = "undefined"
)

type PostService interface {
	CreatePost(ctx context.Context, identity Identity, title, content, imageURL string) (*models.Post, error)
	GetPosts(ctx context.Context, identity Identity, page int) ([]models.Post, int, error)
	GetPost(ctx context.Context, identity Identity, postID string) (*models.Post, error)
	UpdatePost(ctx context.Context, identity Identity, postID, title, content, imageURL string) (*models.Post, error)
	DeletePost(ctx context.Context, identity Identity, postID string) (bool, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	storage  storage.Storage
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, storage storage.Storage) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		storage:  storage,
	}
}

func (p *postService) CreatePost(ctx context.Context, identity Identity, title, content, imageURL string) (*models.Post, error) {
	if err := RequireAuthenticated(identity); err != nil {
		return nil, err
	}

	if fieldErrs := validation.PostInput(title, content); len(fieldErrs) > 0 {
		return nil, apperrors.InvalidInput("Invalid input", fieldErrs)
	}

	creator, err := p.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthenticated("Invalid user")
		}
		return nil, apperrors.Internal("failed to look up creator", err)
	}

	post := &models.Post{
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		CreatorID: creator.UserID,
	}

	err = p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, apperrors.Internal("failed to create post", err)
	}

	post.Creator = creator
	return post, nil
}

// GetPosts returns one page of posts, newest first, together with the total
// count across all pages. Count and fetch are two separate reads.
func (p *postService) GetPosts(ctx context.Context, identity Identity, page int) ([]models.Post, int, error) {
	if err := RequireAuthenticated(identity); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}

	total, err := p.postRepo.Count(ctx)
	if err != nil {
		return nil, 0, apperrors.Internal("failed to count posts", err)
	}

	posts, err := p.postRepo.List(ctx, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, 0, apperrors.Internal("failed to list posts", err)
	}

	return posts, total, nil
}

func (p *postService) GetPost(ctx context.Context, identity Identity, postID string) (*models.Post, error) {
	if err := RequireAuthenticated(identity); err != nil {
		return nil, err
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("No post found!")
		}
		return nil, apperrors.Internal("failed to get post", err)
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, identity Identity, postID, title, content, imageURL string) (*models.Post, error) {
	if err := RequireAuthenticated(identity); err != nil {
		return nil, err
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("No post found!")
		}
		return nil, apperrors.Internal("failed to get post", err)
	}

	if err := RequireOwner(post.CreatorID, identity); err != nil {
		return nil, err
	}

	if fieldErrs := validation.PostInput(title, content); len(fieldErrs) > 0 {
		return nil, apperrors.InvalidInput("Invalid input", fieldErrs)
	}

	post.Title = title
	post.Content = content
	if imageURL != imageURLUnchanged {
		post.ImageURL = imageURL
	}

	err = p.postRepo.Update(ctx, post)
	if err != nil {
		return nil, apperrors.Internal("failed to update post", err)
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, identity Identity, postID string) (bool, error) {
	if err := RequireAuthenticated(identity); err != nil {
		return false, err
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, apperrors.NotFound("No post found!")
		}
		return false, apperrors.Internal("failed to get post", err)
	}

	if err := RequireOwner(post.CreatorID, identity); err != nil {
		return false, err
	}

	// image removal is best effort; the post row goes away regardless
	if post.ImageURL != "" {
		objectName := p.storage.ObjectFromURL(post.ImageURL)
		if err := p.storage.DeleteImage(ctx, objectName); err != nil {
			log.Printf("Warning: failed to delete image %s: %v", objectName, err)
		}
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, apperrors.NotFound("No post found!")
		}
		return false, apperrors.Internal("failed to delete post", err)
	}

	return true, nil
}
