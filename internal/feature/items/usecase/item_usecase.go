package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"review_backend/internal/feature/items/domain/entity"
	"review_backend/internal/shared/pagination"
)

// ListFilter narrows an item listing. Zero values match everything.
type ListFilter struct {
	// Search matches case-insensitively against name and description.
	Search string

	// Category matches exactly.
	Category string
}

// ItemRepository abstracts the persistence layer for items.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ItemRepository interface {
	// List returns one page of items ordered by ID, each with AverageRating set.
	List(ctx context.Context, filter ListFilter, page pagination.Page) ([]entity.Item, error)

	// FindByID returns the item with its reviews and their comments.
	// It returns ErrItemNotFound when absent.
	FindByID(ctx context.Context, id uint) (*entity.Item, error)

	Create(ctx context.Context, item *entity.Item) error

	// Update saves name, description and category. It returns ErrItemNotFound when absent.
	Update(ctx context.Context, item *entity.Item) error

	// Delete removes the item and, through cascades, its reviews and comments.
	Delete(ctx context.Context, id uint) error

	ExistsByName(ctx context.Context, name string) (bool, error)
}

// CreateInput carries the fields of a new item.
type CreateInput struct {
	Name        string
	Description *string
	Category    *string
}

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
	Category    *string
}

// itemUsecase provides business logic for item operations.
type itemUsecase struct {
	repo ItemRepository
}

// NewItemUsecase creates an itemUsecase with the given repository.
func NewItemUsecase(repo ItemRepository) *itemUsecase {
	return &itemUsecase{repo: repo}
}

// List returns one page of items matching filter.
func (u *itemUsecase) List(ctx context.Context, filter ListFilter, page pagination.Page) ([]entity.Item, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)
	return u.repo.List(ctx, filter, page)
}

// Get returns the item with nested reviews and comments.
func (u *itemUsecase) Get(ctx context.Context, id uint) (*entity.Item, error) {
	return u.repo.FindByID(ctx, id)
}

// Create stores a new item.
func (u *itemUsecase) Create(ctx context.Context, in CreateInput) (*entity.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	item := &entity.Item{Name: name, Description: in.Description, Category: in.Category}
	if err := u.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return item, nil
}

// Update applies the non-nil fields of in to the item.
func (u *itemUsecase) Update(ctx context.Context, id uint, in UpdateInput) (*entity.Item, error) {
	item, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		item.Name = name
	}
	if in.Description != nil {
		item.Description = in.Description
	}
	if in.Category != nil {
		item.Category = in.Category
	}
	if err := u.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the item with its reviews and comments.
func (u *itemUsecase) Delete(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}

// Seed inserts the items whose names are not yet present and reports how
// many were added. Running it twice is a no-op.
func (u *itemUsecase) Seed(ctx context.Context, items []CreateInput) (int, error) {
	added := 0
	for _, in := range items {
		exists, err := u.repo.ExistsByName(ctx, in.Name)
		if err != nil {
			return added, fmt.Errorf("failed to check item %q: %w", in.Name, err)
		}
		if exists {
			slog.Debug("seed item already present", "name", in.Name)
			continue
		}
		if _, err := u.Create(ctx, in); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
