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
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/barplan/barplan/pkg/errors"
	"github.com/barplan/barplan/pkg/model"
)

var defaultPriority = model.Priority{FlavorWeight: 50, IngredientWeight: 50}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func loadTestRecipes(t *testing.T) *MemoryStore {
	t.Helper()
	store, err := LoadRecipes(context.Background(), filepath.Join("testdata", "recipes.yaml"))
	require.NoError(t, err)
	return store
}

func TestLoadRecipes(t *testing.T) {
	store := loadTestRecipes(t)
	require.Equal(t, 4, store.Len())

	recipes, err := store.List(context.Background())
	require.NoError(t, err)

	daiquiri := recipes[0]
	assert.Equal(t, "daiquiri", daiquiri.ID)
	assert.Equal(t, "sour", daiquiri.Category)
	assert.Equal(t, []string{"sour", "sweet"}, daiquiri.FlavorTags)
	assert.InDelta(t, 1, daiquiri.BatchMultiplier, 1e-9)
	require.Len(t, daiquiri.Ingredients, 3)
	assert.Equal(t, model.Quantity{Name: "White Rum", Amount: 60, Unit: "ml"}, daiquiri.Ingredients[0])

	punch := recipes[3]
	assert.Equal(t, RecipeID("Rum Punch"), punch.ID)
	_, err = uuid.Parse(punch.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 4, punch.BatchMultiplier, 1e-9)
}

func TestLoadRecipes_WarnsOnUnknownUnit(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := writeFile(t, "recipes.yaml", `recipes:
  - id: gimlet
    name: Gimlet
    ingredients:
      - {name: Gin, amount: 60, unit: ml}
      - {name: Lime, amount: 1, unit: wedge}
      - {name: Ice, amount: 4}
`)
	store, err := LoadRecipes(context.Background(), path)
	require.NoError(t, err)

	r, err := store.Get(context.Background(), "gimlet")
	require.NoError(t, err)
	assert.Equal(t, "wedge", r.Ingredients[1].Unit)

	out := buf.String()
	assert.Contains(t, out, "unknown unit")
	assert.Contains(t, out, `"unit":"wedge"`)
	assert.NotContains(t, out, `"ingredient":"Gin"`)
	assert.NotContains(t, out, `"ingredient":"Ice"`)
}

func TestRecipeID_Stable(t *testing.T) {
	assert.Equal(t, RecipeID("Rum Punch"), RecipeID("  rum punch "))
	assert.NotEqual(t, RecipeID("Rum Punch"), RecipeID("Planter's Punch"))
}

func TestLoadRecipes_Errors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "duplicate ids",
			file:     "dup.yaml",
			content:  "recipes:\n  - {id: a, name: One, ingredients: []}\n  - {id: a, name: Two, ingredients: []}\n",
			wantCode: apperrors.ErrCodeConflict,
		},
		{
			name:     "same derived id",
			file:     "derived.yaml",
			content:  "recipes:\n  - {name: Sour, ingredients: []}\n  - {name: SOUR, ingredients: []}\n",
			wantCode: apperrors.ErrCodeConflict,
		},
		{
			name:     "negative amount",
			file:     "neg.yaml",
			content:  "recipes:\n  - name: Bad\n    ingredients:\n      - {name: gin, amount: -1, unit: ml}\n",
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
		{
			name:     "blank ingredient name",
			file:     "blank.json",
			content:  `{"recipes":[{"name":"Bad","ingredients":[{"name":"  ","amount":1}]}]}`,
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
		{
			name:     "multiplier below one",
			file:     "mult.yaml",
			content:  "recipes:\n  - {name: Bad, batchMultiplier: 0.5, ingredients: []}\n",
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
		{
			name:     "missing name",
			file:     "noname.yaml",
			content:  "recipes:\n  - {id: x, ingredients: []}\n",
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
		{
			name:     "unknown field",
			file:     "typo.yaml",
			content:  "recipes:\n  - {name: Gin, ingredient: []}\n",
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRecipes(context.Background(), writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
		})
	}

	_, err := LoadRecipes(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestMemoryStore_Get(t *testing.T) {
	store := loadTestRecipes(t)
	ctx := context.Background()

	r, err := store.Get(ctx, "mojito")
	require.NoError(t, err)
	assert.Equal(t, "Mojito", r.Name)

	// returned recipes are copies
	r.Ingredients[0].Amount = 999
	again, err := store.Get(ctx, "mojito")
	require.NoError(t, err)
	assert.InDelta(t, 2, again.Ingredients[0].Amount, 1e-9)

	_, err = store.Get(ctx, "negroni")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestMemoryStore_Search(t *testing.T) {
	store := loadTestRecipes(t)
	ctx := context.Background()

	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{"everything", Query{}, []string{"Daiquiri", "Mojito", "Margarita", "Rum Punch"}},
		{"text", Query{Text: "RI"}, []string{"Daiquiri", "Margarita"}},
		{"category", Query{Category: "Sour"}, []string{"Daiquiri", "Margarita"}},
		{"tags", Query{Tags: []string{"sweet", "FRESH"}}, []string{"Mojito"}},
		{"combined", Query{Category: "sour", Tags: []string{"salty"}}, []string{"Margarita"}},
		{"none", Query{Text: "negroni"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Search(ctx, tt.q)
			require.NoError(t, err)
			var names []string
			for _, r := range got {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestMemoryStore_Canceled(t *testing.T) {
	store := loadTestRecipes(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.List(ctx)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCanceled))
	_, err = store.Get(ctx, "mojito")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCanceled))
	_, err = store.Search(ctx, Query{})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCanceled))
}

func TestNewMemoryStore_RequiresID(t *testing.T) {
	_, err := NewMemoryStore(model.Recipe{Name: "anonymous"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest))
}

func TestResolve(t *testing.T) {
	store := loadTestRecipes(t)
	ctx := context.Background()

	r, err := Resolve(ctx, store, "margarita")
	require.NoError(t, err)
	assert.Equal(t, "margarita", r.ID)

	r, err = Resolve(ctx, store, "rum punch")
	require.NoError(t, err)
	assert.Equal(t, "Rum Punch", r.Name)

	_, err = Resolve(ctx, store, "rum")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))

	twins, err := NewMemoryStore(
		model.Recipe{ID: "a", Name: "Sour", BatchMultiplier: 1},
		model.Recipe{ID: "b", Name: "sour", BatchMultiplier: 1},
	)
	require.NoError(t, err)
	_, err = Resolve(ctx, twins, "SOUR")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeConflict))
}

func TestLoadProject(t *testing.T) {
	store := loadTestRecipes(t)

	p, err := LoadProject(context.Background(), filepath.Join("testdata", "project.yaml"), store, defaultPriority)
	require.NoError(t, err)

	inv := p.Inventory
	assert.Equal(t, "Summer Menu", inv.Name)
	assert.Equal(t, []string{"sour", "fresh"}, inv.FlavorTags)
	assert.Equal(t, model.Priority{FlavorWeight: 40, IngredientWeight: 60}, inv.Priority)
	assert.Len(t, inv.Ingredients, 5)

	require.Len(t, p.Plan, 1)
	assert.Equal(t, "margarita", p.Plan[0].Recipe.ID)
	assert.InDelta(t, 1, p.Plan[0].BatchMultiplier, 1e-9)
}

func TestFileProject_JSONWithDefaultPriority(t *testing.T) {
	store := loadTestRecipes(t)

	var src ProjectSource = NewFileProject(filepath.Join("testdata", "project.json"), store, defaultPriority)
	p, err := src.Project(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Winter Menu", p.Inventory.Name)
	assert.Equal(t, defaultPriority, p.Inventory.Priority)
	require.Len(t, p.Plan, 1)
	assert.Equal(t, "daiquiri", p.Plan[0].Recipe.ID)
	assert.InDelta(t, 2, p.Plan[0].BatchMultiplier, 1e-9)
}

func TestLoadProject_Errors(t *testing.T) {
	store := loadTestRecipes(t)

	tests := []struct {
		name     string
		content  string
		recipes  RecipeSource
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "unknown plan recipe",
			content:  "name: X\ningredients: []\nplan:\n  - {recipeId: negroni}\n",
			recipes:  store,
			wantCode: apperrors.ErrCodeNotFound,
		},
		{
			name:     "weights do not add up",
			content:  "name: X\npriority: {flavorWeight: 70, ingredientWeight: 70}\ningredients: []\n",
			recipes:  store,
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
		{
			name:     "bad plan multiplier",
			content:  "name: X\ningredients: []\nplan:\n  - {recipeId: mojito, batchMultiplier: 0.25}\n",
			recipes:  store,
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
		{
			name:     "plan without catalog",
			content:  "name: X\ningredients: []\nplan:\n  - {recipeId: mojito}\n",
			recipes:  nil,
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
		{
			name:     "invalid stock",
			content:  "name: X\ningredients:\n  - {name: gin, amount: -5, unit: ml}\n",
			recipes:  store,
			wantCode: apperrors.ErrCodeInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "project.yaml", tt.content)
			_, err := LoadProject(context.Background(), path, tt.recipes, defaultPriority)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.CodeOf(err))
		})
	}
}

func TestLoadProject_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LoadProject(ctx, filepath.Join("testdata", "project.yaml"), nil, defaultPriority)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCanceled))
}
