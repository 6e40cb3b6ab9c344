package api

import "github.com/tastemap/backend/internal/model"

// CreateRecipeRequest is the payload for creating a recipe. Only the
// descriptive fields are optional; they default to empty values.
type CreateRecipeRequest struct {
	Name         string   `json:"name" binding:"required"`
	Cuisine      string   `json:"cuisine" binding:"required"`
	Continent    string   `json:"continent" binding:"required"`
	Type         string   `json:"type" binding:"required,oneof=food drink"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
}

// Recipe builds the model record with schema defaults applied
func (r *CreateRecipeRequest) Recipe() *model.Recipe {
	ingredients := model.StringArray(r.Ingredients)
	if ingredients == nil {
		ingredients = model.StringArray{}
	}
	return &model.Recipe{
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		Continent:    r.Continent,
		Type:         r.Type,
		Ingredients:  ingredients,
		Instructions: r.Instructions,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
	}
}

// UpdateRecipeRequest is a partial recipe patch. Absent fields are left
// untouched; the record id is never accepted from the body.
type UpdateRecipeRequest struct {
	Name         *string   `json:"name" binding:"omitempty,min=1"`
	Cuisine      *string   `json:"cuisine" binding:"omitempty,min=1"`
	Continent    *string   `json:"continent" binding:"omitempty,min=1"`
	Type         *string   `json:"type" binding:"omitempty,oneof=food drink"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *string   `json:"instructions"`
	Description  *string   `json:"description"`
	ImageURL     *string   `json:"imageUrl"`
}

// Updates converts the patch into column updates for the fields present
func (r *UpdateRecipeRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Cuisine != nil {
		updates["cuisine"] = *r.Cuisine
	}
	if r.Continent != nil {
		updates["continent"] = *r.Continent
	}
	if r.Type != nil {
		updates["type"] = *r.Type
	}
	if r.Ingredients != nil {
		updates["ingredients"] = model.StringArray(*r.Ingredients)
	}
	if r.Instructions != nil {
		updates["instructions"] = *r.Instructions
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.ImageURL != nil {
		updates["image_url"] = *r.ImageURL
	}
	return updates
}
