// Copyright (c) 2025, The barplan Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	apperrors "github.com/barplan/barplan/pkg/errors"
	"github.com/barplan/barplan/pkg/model"
	"github.com/barplan/barplan/pkg/serializer"
	"github.com/barplan/barplan/pkg/units"
)

// recipeNamespace seeds the name-derived IDs of recipes that declare none.
var recipeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://barplan.dev/recipes"))

// RecipeID returns the ID assigned to a recipe named name that declares none.
func RecipeID(name string) string {
	return uuid.NewSHA1(recipeNamespace, []byte(model.NormalizeName(name))).String()
}

// LoadRecipes reads a recipe document and returns it as a MemoryStore.
func LoadRecipes(ctx context.Context, path string) (*MemoryStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.FromContext(err)
	}

	doc, err := serializer.FromFile[RecipeDocument](path, serializer.WithStrict())
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"failed to read recipe catalog", err, map[string]any{"path": path})
	}

	recipes, err := doc.Build()
	if err != nil {
		return nil, apperrors.WrapWithContext(codeOf(err),
			"invalid recipe catalog", err, map[string]any{"path": path})
	}

	store, err := NewMemoryStore(recipes...)
	if err != nil {
		return nil, apperrors.WrapWithContext(codeOf(err),
			"invalid recipe catalog", err, map[string]any{"path": path})
	}

	slog.Debug("loaded recipe catalog",
		slog.String("path", path),
		slog.Int("recipes", store.Len()),
	)
	return store, nil
}

// Build converts the raw records into validated recipes.
func (d *RecipeDocument) Build() ([]model.Recipe, error) {
	out := make([]model.Recipe, 0, len(d.Recipes))
	for i, rec := range d.Recipes {
		r, err := rec.Build()
		if err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("recipe %d", i), err, map[string]any{"name": rec.Name})
		}
		out = append(out, r)
	}
	return out, nil
}

// Build converts the record into a validated recipe, assigning a
// name-derived ID when none is declared.
func (rec RecipeRecord) Build() (model.Recipe, error) {
	ingredients, err := buildQuantities(rec.Ingredients)
	if err != nil {
		return model.Recipe{}, err
	}
	id := rec.ID
	if id == "" {
		id = RecipeID(rec.Name)
	}
	return model.NewRecipe(rec.Name, ingredients,
		model.WithID(id),
		model.WithCategory(rec.Category),
		model.WithFlavorTags(rec.FlavorTags...),
		model.WithBatchMultiplier(rec.BatchMultiplier),
	)
}

// FileProject is a ProjectSource backed by a project document.
type FileProject struct {
	path     string
	recipes  RecipeSource
	priority model.Priority
}

// NewFileProject returns a ProjectSource reading path. Plan entries are
// resolved against recipes; defaultPriority applies when the document has none.
func NewFileProject(path string, recipes RecipeSource, defaultPriority model.Priority) *FileProject {
	return &FileProject{path: path, recipes: recipes, priority: defaultPriority}
}

// Project reads and validates the project document.
func (f *FileProject) Project(ctx context.Context) (*Project, error) {
	return LoadProject(ctx, f.path, f.recipes, f.priority)
}

// LoadProject reads a project document, validates it and resolves its plan
// against recipes.
func LoadProject(ctx context.Context, path string, recipes RecipeSource, defaultPriority model.Priority) (*Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.FromContext(err)
	}

	doc, err := serializer.FromFile[ProjectDocument](path, serializer.WithStrict())
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"failed to read project", err, map[string]any{"path": path})
	}

	p, err := doc.Build(ctx, recipes, defaultPriority)
	if err != nil {
		return nil, apperrors.WrapWithContext(codeOf(err),
			"invalid project", err, map[string]any{"path": path})
	}

	slog.Debug("loaded project",
		slog.String("path", path),
		slog.String("name", p.Inventory.Name),
		slog.Int("ingredients", len(p.Inventory.Ingredients)),
		slog.Int("commitments", len(p.Plan)),
	)
	return p, nil
}

// Build validates the document and resolves its plan against recipes.
func (d *ProjectDocument) Build(ctx context.Context, recipes RecipeSource, defaultPriority model.Priority) (*Project, error) {
	ingredients, err := buildQuantities(d.Ingredients)
	if err != nil {
		return nil, err
	}

	priority := defaultPriority
	if d.Priority != nil {
		priority = *d.Priority
	}

	inv, err := model.NewInventory(d.Name, d.FlavorTags, ingredients, priority)
	if err != nil {
		return nil, err
	}

	plan := make(model.CommittedUsage, 0, len(d.Plan))
	for i, pr := range d.Plan {
		if recipes == nil {
			return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
				"project has a plan but no recipe catalog was given")
		}
		r, err := recipes.Get(ctx, pr.RecipeID)
		if err != nil {
			return nil, apperrors.WrapWithContext(codeOf(err),
				fmt.Sprintf("plan entry %d", i), err, map[string]any{"recipeId": pr.RecipeID})
		}
		c, err := model.NewCommitment(r, pr.BatchMultiplier)
		if err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("plan entry %d", i), err, map[string]any{"recipeId": pr.RecipeID})
		}
		plan = append(plan, c)
	}

	return &Project{Inventory: inv, Plan: plan}, nil
}

func buildQuantities(raw []model.Quantity) ([]model.Quantity, error) {
	out := make([]model.Quantity, 0, len(raw))
	for i, q := range raw {
		built, err := model.NewQuantity(q.Name, q.Amount, q.Unit)
		if err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("ingredient %d", i), err, map[string]any{"name": q.Name})
		}
		if built.Unit != "" && !units.Known(built.Unit) {
			slog.Warn("unknown unit, converting with factor 1",
				slog.String("ingredient", built.Name),
				slog.String("unit", built.Unit))
		}
		out = append(out, built)
	}
	return out, nil
}

// codeOf keeps the code of a structured cause, defaulting to INTERNAL.
func codeOf(err error) apperrors.ErrorCode {
	if c := apperrors.CodeOf(err); c != "" {
		return c
	}
	return apperrors.ErrCodeInternal
}
