package constants

const (
	// Context keys set by the auth middleware.
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "current_user"

	MinPasswordLength = 6

	// Pagination bounds.
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Bounded list sizes on the member dashboard and activity feed.
	DashboardListLimit = 5
	ActivityFeedLimit  = 20

	// Profile picture upload limits.
	MaxUploadSize = 5 << 20 // 5 MiB
)
