package contextkeys

// Custom type to avoid collisions with other context keys.
type contextKey string

// DBContextKey is the key under which the per-request *gorm.DB is stored.
// Tests use it to run every request of a test case inside one transaction.
const DBContextKey = contextKey("db")
