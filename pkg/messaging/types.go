package messaging

type ChangeTopic string

const (
	ToolSubmittedTopic    = ChangeTopic("tool_submitted")
	RemovalRequestedTopic = ChangeTopic("removal_requested")
	ContactReceivedTopic  = ChangeTopic("contact_received")
)
