// File: utils/constants.go
package utils

import "time"

// CartKeyPrefix is the prefix used for Redis cart keys.
const CartKeyPrefix = "cart:"

// CartTTL is the time-to-live for persisted carts.
const CartTTL = 30 * 24 * time.Hour

// SessionKeyPrefix is the prefix used for consultation session keys.
const SessionKeyPrefix = "consult:"

// SessionTTL is the time-to-live for consultation sessions.
const SessionTTL = 30 * time.Minute
