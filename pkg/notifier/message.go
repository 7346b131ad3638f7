package notifier

const queuePrefix = "notification."

const (
	TopicMessages    = "messages"
	TopicCredentials = "credentials"
	TopicProofs      = "proofs"
)

// QueueName is the AMQP queue carrying an agent's notifications to its webhook server.
func QueueName(endpointDID string) string {
	return queuePrefix + endpointDID
}

type Notification struct {
	Topic     string      `json:"topic"`
	Event     string      `json:"event"`
	EventData interface{} `json:"message"`
}

type EventMessage struct {
	Event     string      `json:"event"`
	Timestamp int64       `json:"timestamp"`
	EventData interface{} `json:"message"`
}
