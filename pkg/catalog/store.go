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
	"slices"
	"strings"

	apperrors "github.com/barplan/barplan/pkg/errors"
	"github.com/barplan/barplan/pkg/model"
)

// MemoryStore is an immutable in-memory RecipeSource.
type MemoryStore struct {
	recipes []model.Recipe
	byID    map[string]int
}

// NewMemoryStore indexes recipes by ID. Every recipe needs a non-empty ID
// and IDs must be unique.
func NewMemoryStore(recipes ...model.Recipe) (*MemoryStore, error) {
	s := &MemoryStore{
		recipes: make([]model.Recipe, 0, len(recipes)),
		byID:    make(map[string]int, len(recipes)),
	}
	for i, r := range recipes {
		if r.ID == "" {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("recipe %d (%s) has no id", i, r.Name), nil)
		}
		if j, ok := s.byID[r.ID]; ok {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeConflict,
				fmt.Sprintf("duplicate recipe id %q", r.ID),
				map[string]any{"first": s.recipes[j].Name, "second": r.Name})
		}
		s.byID[r.ID] = len(s.recipes)
		s.recipes = append(s.recipes, cloneRecipe(r))
	}
	return s, nil
}

// Len returns the number of recipes in the store.
func (s *MemoryStore) Len() int {
	return len(s.recipes)
}

// List returns every recipe in catalog order.
func (s *MemoryStore) List(ctx context.Context) ([]model.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.FromContext(err)
	}
	out := make([]model.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, cloneRecipe(r))
	}
	return out, nil
}

// Get returns the recipe with the given ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (model.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return model.Recipe{}, apperrors.FromContext(err)
	}
	i, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return model.Recipe{}, apperrors.NewWithContext(apperrors.ErrCodeNotFound,
			fmt.Sprintf("recipe %q not found", id), map[string]any{"id": id})
	}
	return cloneRecipe(s.recipes[i]), nil
}

// Search returns the recipes matching q in catalog order.
func (s *MemoryStore) Search(ctx context.Context, q Query) ([]model.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.FromContext(err)
	}

	text := model.NormalizeName(q.Text)
	category := model.NormalizeName(q.Category)
	tags := model.NormalizeTags(q.Tags)

	var out []model.Recipe
	for _, r := range s.recipes {
		if text != "" && !strings.Contains(model.NormalizeName(r.Name), text) {
			continue
		}
		if category != "" && model.NormalizeName(r.Category) != category {
			continue
		}
		if !hasAllTags(r.FlavorTags, tags) {
			continue
		}
		out = append(out, cloneRecipe(r))
	}
	return out, nil
}

// Resolve finds a recipe by ID, falling back to an exact case-insensitive
// name match when the name is unique in src.
func Resolve(ctx context.Context, src RecipeSource, ref string) (model.Recipe, error) {
	r, err := src.Get(ctx, ref)
	if err == nil {
		return r, nil
	}
	if !apperrors.IsCode(err, apperrors.ErrCodeNotFound) {
		return model.Recipe{}, err
	}

	candidates, serr := src.Search(ctx, Query{Text: ref})
	if serr != nil {
		return model.Recipe{}, serr
	}
	want := model.NormalizeName(ref)
	var matches []model.Recipe
	for _, c := range candidates {
		if model.NormalizeName(c.Name) == want {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return model.Recipe{}, err
	case 1:
		return matches[0], nil
	default:
		return model.Recipe{}, apperrors.NewWithContext(apperrors.ErrCodeConflict,
			fmt.Sprintf("recipe name %q is ambiguous, use an id", ref),
			map[string]any{"matches": len(matches)})
	}
}

func hasAllTags(have, want []string) bool {
	for _, t := range want {
		if !slices.Contains(have, t) {
			return false
		}
	}
	return true
}

func cloneRecipe(r model.Recipe) model.Recipe {
	r.FlavorTags = slices.Clone(r.FlavorTags)
	r.Ingredients = slices.Clone(r.Ingredients)
	return r
}
