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

package model

import (
	"math"
	"strings"

	apperrors "github.com/barplan/barplan/pkg/errors"
)

// Quantity is an amount of a named ingredient in a given unit.
type Quantity struct {
	Name   string  `json:"name" yaml:"name" validate:"required"`
	Amount float64 `json:"amount" yaml:"amount" validate:"gte=0"`
	Unit   string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// NewQuantity builds a Quantity, trimming the name and unit.
// It fails when the name is blank or the amount is negative, NaN or infinite.
func NewQuantity(name string, amount float64, unit string) (Quantity, error) {
	q := Quantity{
		Name:   strings.TrimSpace(name),
		Amount: amount,
		Unit:   strings.TrimSpace(unit),
	}
	if err := q.Validate(); err != nil {
		return Quantity{}, err
	}
	return q, nil
}

// Validate checks the quantity invariants.
func (q Quantity) Validate() error {
	ctx := map[string]any{"ingredient": q.Name}
	if math.IsNaN(q.Amount) || math.IsInf(q.Amount, 0) {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid quantity: amount must be a finite number", ctx)
	}
	if strings.TrimSpace(q.Name) == "" {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid quantity: name is required", ctx)
	}
	return validateStruct(q, "quantity", ctx)
}

// Key returns the normalized ingredient name used for matching.
func (q Quantity) Key() string {
	return NormalizeName(q.Name)
}
