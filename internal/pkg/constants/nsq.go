package constants

// NSQ topics consumed by the notification mailer
const (
	TopicAidCreated         = "aid.created"
	TopicAidAssigned        = "aid.assigned"
	TopicNotificationStatus = "notification.status"
)
