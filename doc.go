/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package baseenum lets a Go type declare a closed set of named constants and
// query them generically: list the values, validate a name or a value, and map
// names to values and back.
//
// A type takes part by implementing Enumerable:
//
//	type Color int
//
//	const (
//		Red Color = iota + 1
//		Green
//		Blue
//	)
//
//	func (Color) EnumConstants() []baseenum.Constant[Color] {
//		return []baseenum.Constant[Color]{
//			baseenum.Const("RED", Red),
//			baseenum.Const("GREEN", Green),
//			baseenum.Const("BLUE", Blue),
//		}
//	}
//
// after which baseenum.Options[Color](), baseenum.ValueByName[Color]("green")
// and friends work against a table that is built once per type and cached for
// the life of the process. Struct-declared constants can be introspected with
// Reflect.
package baseenum
