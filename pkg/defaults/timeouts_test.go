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

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"CommandTimeout", CommandTimeout, 30 * time.Second, 10 * time.Minute},
		{"LoadTimeout", LoadTimeout, 5 * time.Second, 60 * time.Second},
		{"RankTimeout", RankTimeout, 10 * time.Second, 5 * time.Minute},
		{"ScoreTimeout", ScoreTimeout, 1 * time.Second, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) exceeds maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestTimeoutRelationships(t *testing.T) {
	if LoadTimeout >= CommandTimeout {
		t.Errorf("LoadTimeout (%v) should be less than CommandTimeout (%v)", LoadTimeout, CommandTimeout)
	}
	if ScoreTimeout >= RankTimeout {
		t.Errorf("ScoreTimeout (%v) should be less than RankTimeout (%v)", ScoreTimeout, RankTimeout)
	}
}

func TestScoringDefaults(t *testing.T) {
	if FlavorWeight+IngredientWeight != 100 {
		t.Errorf("weights must sum to 100, got %v", FlavorWeight+IngredientWeight)
	}
	if BatchMultiplier < 1 {
		t.Errorf("BatchMultiplier (%v) must be at least 1", BatchMultiplier)
	}
	if RankConcurrency < 1 || RankConcurrency > MaxRankConcurrency {
		t.Errorf("RankConcurrency (%d) must be within [1, %d]", RankConcurrency, MaxRankConcurrency)
	}
	if RankLimit < 0 {
		t.Errorf("RankLimit (%d) must not be negative", RankLimit)
	}
}
