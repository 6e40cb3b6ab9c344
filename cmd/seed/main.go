package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/tastemap/backend/config"
	"github.com/tastemap/backend/internal/database"
	"github.com/tastemap/backend/internal/model"
	"github.com/tastemap/backend/internal/service"
)

type seedRecipe struct {
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine"`
	Continent    string   `json:"continent"`
	Type         string   `json:"type"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
}

func main() {
	file := flag.String("file", "cmd/seed/recipes.sample.json", "path to a JSON file of recipes to insert")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	var seeds []seedRecipe
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Fatalf("Failed to parse seed file: %v", err)
	}

	recipeService := service.NewRecipeService(db)
	ctx := context.Background()

	inserted := 0
	for _, seed := range seeds {
		recipe := &model.Recipe{
			Name:         seed.Name,
			Cuisine:      seed.Cuisine,
			Continent:    seed.Continent,
			Type:         seed.Type,
			Ingredients:  model.StringArray(seed.Ingredients),
			Instructions: seed.Instructions,
			Description:  seed.Description,
			ImageURL:     seed.ImageURL,
		}
		if _, err := recipeService.CreateRecipe(ctx, recipe); err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				log.Printf("Skipping invalid seed recipe %q: %v", seed.Name, verr)
				continue
			}
			log.Fatalf("Failed to insert recipe %q: %v", seed.Name, err)
		}
		inserted++
	}

	log.Printf("Seeded %d recipes", inserted)
}
