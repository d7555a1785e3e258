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

package baseenum_test

import "github.com/tomoncle/baseenum"

type Color int

const (
	Red Color = iota + 1
	Green
	Blue
)

func (Color) EnumConstants() []baseenum.Constant[Color] {
	return []baseenum.Constant[Color]{
		baseenum.Const("RED", Red),
		baseenum.Const("GREEN", Green),
		baseenum.Const("BLUE", Blue),
	}
}

func (c Color) IsValid() bool  { return baseenum.IsValidValue(c) }
func (c Color) String() string { return baseenum.Name(c) }

type Flag int

const (
	Off Flag = 0
	On  Flag = 1
)

func (Flag) EnumConstants() []baseenum.Constant[Flag] {
	return []baseenum.Constant[Flag]{
		baseenum.Const("OFF", Off),
		baseenum.Const("ON", On),
	}
}

// Level binds two names to "warn".
type Level string

func (Level) EnumConstants() []baseenum.Constant[Level] {
	return []baseenum.Constant[Level]{
		baseenum.Const("WARN", Level("warn")),
		baseenum.Const("WARNING", Level("warn")),
		baseenum.Const("ERROR", Level("error")),
	}
}

type Empty string

func (Empty) EnumConstants() []baseenum.Constant[Empty] { return nil }

type Broken int

func (Broken) EnumConstants() []baseenum.Constant[Broken] {
	return []baseenum.Constant[Broken]{
		baseenum.Const("A", Broken(1)),
		baseenum.Const("A", Broken(2)),
	}
}

type Direction uint8

func (Direction) EnumConstants() []baseenum.Constant[Direction] {
	return []baseenum.Constant[Direction]{
		baseenum.Const("NORTH", Direction(0)),
		baseenum.Const("EAST", Direction(1)),
		baseenum.Const("SOUTH", Direction(2)),
		baseenum.Const("WEST", Direction(3)),
	}
}
