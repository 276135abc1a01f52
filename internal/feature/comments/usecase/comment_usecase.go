package usecase

import (
	"context"
	"fmt"
	"strings"

	"review_backend/internal/feature/comments/domain/entity"
	"review_backend/internal/shared/ownership"
	"review_backend/internal/shared/pagination"
)

// CommentRepository abstracts the persistence layer for comments.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CommentRepository interface {
	// ListForReview returns comments oldest first with their authors.
	ListForReview(ctx context.Context, reviewID uint, page pagination.Page) ([]entity.Comment, error)

	// ListByUser returns the user's comments newest first.
	ListByUser(ctx context.Context, userID uint, page pagination.Page) ([]entity.Comment, error)

	// FindByID returns ErrCommentNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)

	Create(ctx context.Context, comment *entity.Comment) error
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id uint) error

	ReviewExists(ctx context.Context, reviewID uint) (bool, error)
}

// commentUsecase provides business logic for comment operations.
type commentUsecase struct {
	repo CommentRepository
}

// NewCommentUsecase creates a commentUsecase with the given repository.
func NewCommentUsecase(repo CommentRepository) *commentUsecase {
	return &commentUsecase{repo: repo}
}

// ListForReview returns one page of the review's comments, oldest first.
func (u *commentUsecase) ListForReview(ctx context.Context, reviewID uint, page pagination.Page) ([]entity.Comment, error) {
	if err := u.requireReview(ctx, reviewID); err != nil {
		return nil, err
	}
	return u.repo.ListForReview(ctx, reviewID, page)
}

// ListMine returns one page of the actor's comments, newest first.
func (u *commentUsecase) ListMine(ctx context.Context, actorID uint, page pagination.Page) ([]entity.Comment, error) {
	return u.repo.ListByUser(ctx, actorID, page)
}

// Get returns a single comment.
func (u *commentUsecase) Get(ctx context.Context, id uint) (*entity.Comment, error) {
	return u.repo.FindByID(ctx, id)
}

// Create adds the actor's comment to a review.
func (u *commentUsecase) Create(ctx context.Context, actorID, reviewID uint, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if err := u.requireReview(ctx, reviewID); err != nil {
		return nil, err
	}
	comment := &entity.Comment{Content: content, UserID: actorID, ReviewID: reviewID}
	if err := u.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// Update replaces the content of the actor's own comment.
func (u *commentUsecase) Update(ctx context.Context, actorID, id uint, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	comment, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownership.Authorize(actorID, comment.UserID, "update", "comment"); err != nil {
		return nil, err
	}
	comment.Content = content
	if err := u.repo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes the actor's own comment.
func (u *commentUsecase) Delete(ctx context.Context, actorID, id uint) error {
	comment, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownership.Authorize(actorID, comment.UserID, "delete", "comment"); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *commentUsecase) requireReview(ctx context.Context, reviewID uint) error {
	ok, err := u.repo.ReviewExists(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("failed to look up review: %w", err)
	}
	if !ok {
		return ErrReviewNotFound
	}
	return nil
}
