package notify

import "go.uber.org/zap"

// Notifier carries non-blocking, user-visible action outcomes. Nothing
// delivered through it is fatal; a failed action is reported and the user
// may simply retry.
type Notifier interface {
	Info(orderID, message string)
	Error(orderID, message string)
}

// LogNotifier renders notifications through the service log. It stands in
// for the front-end toast surface when the gateway runs headless.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Info(orderID, message string) {
	n.logger.Info(message, zap.String("order_id", orderID))
}

func (n *LogNotifier) Error(orderID, message string) {
	n.logger.Warn(message, zap.String("order_id", orderID))
}
