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

// Package header provides the envelope common to every barplan report.
//
// Each report embeds Header inline, so serialized output starts with:
//
//	kind: RankingReport
//	apiVersion: barplan.dev/v1alpha1
//	metadata:
//	  project: Summer Menu
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v0.3.0
//
// Build one with New:
//
//	h := header.New(header.KindScoreReport,
//		header.WithProject(inv.Name),
//		header.WithVersion(version),
//	)
//
// Timestamps are added only to reports. Scoring itself is time-independent.
package header
