package domain

import "time"

// CartTTL is the selection cart expiry measured from the last write
const CartTTL = 24 * time.Hour

// DateFormat is the calendar date layout used by query filters
const DateFormat = "2006-01-02" // YYYY-MM-DD

// DefaultTimezone is the local time used for schedule filtering
const DefaultTimezone = "Asia/Ho_Chi_Minh"
