package cart

import "errors"

// ErrStockExceeded signals a rejected quantity change. The cart is left
// unchanged; callers surface it as a warning, not a failure.
var ErrStockExceeded = errors.New("requested quantity exceeds available stock")

// ErrItemNotFound signals an update or removal against a line that is not
// in the cart.
var ErrItemNotFound = errors.New("item not in cart")
