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

// Package units holds the measurement conversion table used by the scoring
// engine.
//
// Every unit symbol maps to a single factor relative to an implicit base unit
// (ml for volume, g for mass). Volume, mass and count-like units share one
// flat namespace: converting grams to milliliters yields a number even though
// the two are not physically interchangeable. Displayed values depend on this,
// so no dimensional checks are applied.
//
// Unknown symbols (e.g. "piece", "slice", "") have factor 1, meaning they are
// treated as already expressed in base units.
//
//	ml := units.Convert(2, "oz", "ml") // 59.147
package units
