package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"review_backend/internal/feature/reviews/domain/entity"
	"review_backend/internal/shared/ownership"
	"review_backend/internal/shared/pagination"
)

// ReviewRepository abstracts the persistence layer for reviews.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ReviewRepository interface {
	// ListForItem returns reviews newest first with their authors. itemID 0 lists all reviews.
	ListForItem(ctx context.Context, itemID uint, page pagination.Page) ([]entity.Review, error)

	// ListByUser returns the user's reviews newest first.
	ListByUser(ctx context.Context, userID uint, page pagination.Page) ([]entity.Review, error)

	// FindByID returns the review with its author and comments, or ErrReviewNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Review, error)

	// FindByUserAndItem returns ErrReviewNotFound when the user has not reviewed the item.
	FindByUserAndItem(ctx context.Context, userID, itemID uint) (*entity.Review, error)

	// Create returns ErrAlreadyReviewed when the (user, item) pair is taken.
	Create(ctx context.Context, review *entity.Review) error

	// Update saves rating and content.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes the review and its comments.
	Delete(ctx context.Context, id uint) error

	ItemExists(ctx context.Context, itemID uint) (bool, error)
}

// CreateInput carries the fields of a new review.
type CreateInput struct {
	ItemID  uint
	Rating  int
	Content string
}

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Rating  *int
	Content *string
}

// reviewUsecase provides business logic for review operations.
type reviewUsecase struct {
	repo ReviewRepository
}

// NewReviewUsecase creates a reviewUsecase with the given repository.
func NewReviewUsecase(repo ReviewRepository) *reviewUsecase {
	return &reviewUsecase{repo: repo}
}

func validRating(r int) bool {
	return r >= entity.MinRating && r <= entity.MaxRating
}

// ListForItem returns one page of reviews for the item, newest first.
// A non-zero itemID that names no item yields ErrItemNotFound.
func (u *reviewUsecase) ListForItem(ctx context.Context, itemID uint, page pagination.Page) ([]entity.Review, error) {
	if itemID != 0 {
		if err := u.requireItem(ctx, itemID); err != nil {
			return nil, err
		}
	}
	return u.repo.ListForItem(ctx, itemID, page)
}

// ListMine returns one page of the actor's reviews, newest first.
func (u *reviewUsecase) ListMine(ctx context.Context, actorID uint, page pagination.Page) ([]entity.Review, error) {
	return u.repo.ListByUser(ctx, actorID, page)
}

// Get returns the review with its comments.
func (u *reviewUsecase) Get(ctx context.Context, id uint) (*entity.Review, error) {
	return u.repo.FindByID(ctx, id)
}

// Create stores the actor's review of an item. Each user reviews an item at
// most once; the unique index backs the pre-check under concurrency.
func (u *reviewUsecase) Create(ctx context.Context, actorID uint, in CreateInput) (*entity.Review, error) {
	if !validRating(in.Rating) {
		return nil, ErrInvalidRating
	}
	if err := u.requireItem(ctx, in.ItemID); err != nil {
		return nil, err
	}

	if _, err := u.repo.FindByUserAndItem(ctx, actorID, in.ItemID); err == nil {
		return nil, ErrAlreadyReviewed
	} else if !errors.Is(err, ErrReviewNotFound) {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}

	review := &entity.Review{
		Rating:  in.Rating,
		Content: strings.TrimSpace(in.Content),
		UserID:  actorID,
		ItemID:  in.ItemID,
	}
	if err := u.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Update changes the rating and/or content of the actor's own review.
func (u *reviewUsecase) Update(ctx context.Context, actorID, id uint, in UpdateInput) (*entity.Review, error) {
	if in.Rating == nil && in.Content == nil {
		return nil, ErrEmptyUpdate
	}
	if in.Rating != nil && !validRating(*in.Rating) {
		return nil, ErrInvalidRating
	}

	review, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ownership.Authorize(actorID, review.UserID, "update", "review"); err != nil {
		return nil, err
	}

	if in.Rating != nil {
		review.Rating = *in.Rating
	}
	if in.Content != nil {
		review.Content = strings.TrimSpace(*in.Content)
	}
	if err := u.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete removes the actor's own review together with its comments.
func (u *reviewUsecase) Delete(ctx context.Context, actorID, id uint) error {
	review, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := ownership.Authorize(actorID, review.UserID, "delete", "review"); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func (u *reviewUsecase) requireItem(ctx context.Context, itemID uint) error {
	ok, err := u.repo.ItemExists(ctx, itemID)
	if err != nil {
		return fmt.Errorf("failed to look up item: %w", err)
	}
	if !ok {
		return ErrItemNotFound
	}
	return nil
}
