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

// MatchFlavors scores the overlap between a recipe's flavor tags and the
// project's target tags. The score is the share of target tags the recipe
// hits, so it stays within [0, 100]. Both inputs are treated as sets;
// MatchedTags follows the recipe's tag order.
func MatchFlavors(recipeTags, inventoryTags []string) FlavorResult {
	if len(recipeTags) == 0 || len(inventoryTags) == 0 {
		return FlavorResult{MatchedTags: []string{}}
	}

	target := make(map[string]struct{}, len(inventoryTags))
	for _, t := range inventoryTags {
		target[t] = struct{}{}
	}

	matched := make([]string, 0, len(recipeTags))
	seen := make(map[string]struct{}, len(recipeTags))
	for _, t := range recipeTags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := target[t]; ok {
			matched = append(matched, t)
		}
	}

	return FlavorResult{
		Score:       100 * float64(len(matched)) / float64(len(target)),
		MatchedTags: matched,
	}
}
