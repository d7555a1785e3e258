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

package baseenum

import (
	"errors"
	"fmt"

	"github.com/tomoncle/baseenum/types"
)

// Validate returns an error for every value that reports itself invalid,
// joined with errors.Join, or nil when all are valid.
func Validate(values ...types.BaseEnum) error {
	var errs []error
	for i, v := range values {
		if v == nil {
			errs = append(errs, fmt.Errorf("%w: value #%d is nil", ErrUnknownValue, i))
			continue
		}
		if !v.IsValid() {
			errs = append(errs, fmt.Errorf("%w: value #%d (%T) %s", ErrUnknownValue, i, v, v.String()))
		}
	}
	return errors.Join(errs...)
}
