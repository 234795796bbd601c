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
	"time"
)

// APIVersion is the schema version stamped on every report.
const APIVersion = "barplan.dev/v1alpha1"

// Metadata keys written by New and its options.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
	MetadataProject   = "project"
)

// Kind names the report a document carries.
type Kind string

const (
	KindScoreReport     Kind = "ScoreReport"
	KindRankingReport   Kind = "RankingReport"
	KindShortfallReport Kind = "ShortfallReport"
	KindUsageReport     Kind = "UsageReport"
	KindUnitTable       Kind = "UnitTable"
)

// Header is the kind/apiVersion/metadata envelope shared by all reports.
type Header struct {
	Kind       Kind              `json:"kind" yaml:"kind"`
	APIVersion string            `json:"apiVersion" yaml:"apiVersion"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option adds metadata to a header built by New.
type Option func(*Header)

// WithVersion records the version of the tool that generated the report.
// An empty version is not recorded.
func WithVersion(version string) Option {
	return func(h *Header) {
		if version != "" {
			h.Metadata[MetadataVersion] = version
		}
	}
}

// WithProject records the project the report was computed for.
// An unnamed project is not recorded.
func WithProject(name string) Option {
	return func(h *Header) {
		if name != "" {
			h.Metadata[MetadataProject] = name
		}
	}
}

// New returns a header for kind at APIVersion, stamped with the current UTC
// time.
func New(kind Kind, opts ...Option) Header {
	h := Header{
		Kind:       kind,
		APIVersion: APIVersion,
		Metadata: map[string]string{
			MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
		},
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}
