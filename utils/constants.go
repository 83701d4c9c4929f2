// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix used for Redis month-availability cache keys.
const AvailabilityCachePrefix = "avail:"

// AvailabilityCacheTTL is the time-to-live for cached month availability.
const AvailabilityCacheTTL = 60 * time.Second

// BookingSessionPrefix is the prefix used for Redis booking session keys.
const BookingSessionPrefix = "booking:"

// BookingSessionTTL is the time-to-live for booking sessions.
const BookingSessionTTL = 30 * time.Minute

// CartPrefix is the prefix used for Redis cart keys.
const CartPrefix = "cart:"

// CartTTL is the time-to-live for carts.
const CartTTL = 24 * time.Hour
