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

package scoring

import (
	"github.com/barplan/barplan/pkg/model"
	"github.com/barplan/barplan/pkg/units"
)

// line is a quantity list entry after same-name entries were folded together.
type line struct {
	key    string
	name   string
	amount float64
	unit   string
}

// mergeByKey folds entries that share a normalized name into the first one,
// converting later amounts into the first entry's unit. Order of first
// occurrence is kept.
func mergeByKey(qs []model.Quantity) []line {
	out := make([]line, 0, len(qs))
	index := make(map[string]int, len(qs))
	for _, q := range qs {
		k := q.Key()
		if i, ok := index[k]; ok {
			out[i].amount += units.Convert(q.Amount, q.Unit, out[i].unit)
			continue
		}
		index[k] = len(out)
		out = append(out, line{key: k, name: q.Name, amount: q.Amount, unit: q.Unit})
	}
	return out
}
