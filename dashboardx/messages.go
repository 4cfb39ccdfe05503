package dashboardx

// User-facing fallback messages. Server-provided messages take precedence
// where the remote call produced one.
const (
	msgLoadFailed        = "Failed to load dashboard data"
	msgSubmitFailed      = "Failed to send topic request"
	msgMaterializeFailed = "Topic creation failed"
	msgDeleteFailed      = "Delete failed"
	msgInvalidPartitions = "Please enter a valid number of partitions"
	msgEmptyTopicName    = "Topic name must not be empty"
	msgAlterSuccess      = "Topic updated successfully!"
	msgAlterFailed       = "Failed to update topic"
	msgAlterTransport    = "Error while updating topic"
)

// RouteHome is the route handed to the navigation callback after a successful
// partition alteration.
const RouteHome = "/home"
