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

// Package serializer encodes reports and decodes input documents.
//
// # Formats
//
//   - JSON: indented, for programmatic consumption
//   - YAML: gopkg.in/yaml.v3, for humans and version control
//   - Table: flattened dotted keys in two aligned columns; write-only
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//		return err
//	}
//
// An empty path writes to stdout. Table keys follow the json tag names of the
// serialized structs, so they line up with the JSON output.
//
// # Reading
//
//	doc, err := serializer.FromFile[catalog.RecipeDocument](path, serializer.WithStrict())
//
// The format is detected from the file extension. WithStrict rejects fields
// the target type does not declare.
package serializer
