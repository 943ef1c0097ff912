package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToUser(userID string, msgType string, payload interface{})
}

// MsgEvaluationCompleted is pushed to a user's sockets once their report is ready
const MsgEvaluationCompleted = "evaluation_completed"
