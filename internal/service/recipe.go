package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastemap/backend/internal/model"
)

// RecipeFilter holds the optional list filters. Each field is applied to the
// query only when non-empty; all present filters are AND-combined.
type RecipeFilter struct {
	Type    string
	Cuisine string
	Query   string
}

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe creates a new recipe
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes lists recipes matching the filter. An empty filter returns the
// full catalog; result order is store-defined.
func (s *RecipeService) ListRecipes(ctx context.Context, filter RecipeFilter) ([]model.Recipe, error) {
	query := s.db.WithContext(ctx)

	if filter.Type != "" {
		if !model.IsValidType(filter.Type) {
			return nil, ErrInvalidType
		}
		query = query.Where("type = ?", filter.Type)
	}

	if filter.Cuisine != "" {
		query = query.Where("cuisine = ?", filter.Cuisine)
	}

	if filter.Query != "" {
		like := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	recipes := []model.Recipe{}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe merges the given column updates into an existing recipe and
// returns the updated record. The id column is never part of updates.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*model.Recipe, error) {
	// Missing id has to surface as not-found, not a silent zero-row update
	if _, err := s.GetRecipe(ctx, id); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetRecipe(ctx, id)
}

// DeleteRecipe deletes a recipe. Deletes are hard, so a second delete of the
// same id reports not-found.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetRecipe(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error
}

// DistinctCuisines returns the unique cuisine values across recipes matching
// the optional type and continent filters. A present type must be valid.
func (s *RecipeService) DistinctCuisines(ctx context.Context, recipeType, continent string) ([]string, error) {
	query := s.db.WithContext(ctx).Model(&model.Recipe{})

	if recipeType != "" {
		if !model.IsValidType(recipeType) {
			return nil, ErrInvalidType
		}
		query = query.Where("type = ?", recipeType)
	}

	if continent != "" {
		query = query.Where("continent = ?", continent)
	}

	cuisines := []string{}
	if err := query.Distinct().Pluck("cuisine", &cuisines).Error; err != nil {
		return nil, err
	}
	return cuisines, nil
}

// DistinctContinents returns the unique continent values across recipes
// matching the optional type filter
func (s *RecipeService) DistinctContinents(ctx context.Context, recipeType string) ([]string, error) {
	query := s.db.WithContext(ctx).Model(&model.Recipe{})

	if recipeType != "" {
		if !model.IsValidType(recipeType) {
			return nil, ErrInvalidType
		}
		query = query.Where("type = ?", recipeType)
	}

	continents := []string{}
	if err := query.Distinct().Pluck("continent", &continents).Error; err != nil {
		return nil, err
	}
	return continents, nil
}
