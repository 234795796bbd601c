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

package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		opts []Option
		want map[string]string
	}{
		{
			name: "bare",
			kind: KindUnitTable,
			want: map[string]string{},
		},
		{
			name: "project and version",
			kind: KindRankingReport,
			opts: []Option{WithProject("Summer Menu"), WithVersion("v1.2.3")},
			want: map[string]string{MetadataProject: "Summer Menu", MetadataVersion: "v1.2.3"},
		},
		{
			name: "empty values are skipped",
			kind: KindScoreReport,
			opts: []Option{WithProject(""), WithVersion("")},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(tt.kind, tt.opts...)
			assert.Equal(t, tt.kind, h.Kind)
			assert.Equal(t, APIVersion, h.APIVersion)

			ts, err := time.Parse(time.RFC3339, h.Metadata[MetadataTimestamp])
			require.NoError(t, err)
			assert.WithinDuration(t, time.Now(), ts, time.Minute)

			delete(h.Metadata, MetadataTimestamp)
			assert.Equal(t, tt.want, h.Metadata)
		})
	}
}

func TestNew_IndependentMetadata(t *testing.T) {
	a := New(KindUsageReport, WithProject("a"))
	b := New(KindUsageReport, WithProject("b"))
	assert.Equal(t, "a", a.Metadata[MetadataProject])
	assert.Equal(t, "b", b.Metadata[MetadataProject])
}
