// SPDX-License-Identifier: MIT

package numeric

import "errors"

// ErrInvalidRadix indicates a radix outside [MinRadix, MaxRadix].
var ErrInvalidRadix = errors.New("numeric: radix must be between 2 and 10")
