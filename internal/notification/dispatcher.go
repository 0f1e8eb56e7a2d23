package notification

import "context"

// Failure classes reported by a Dispatcher. Permanent failures mean the
// device token will never work again and must be pruned; transient failures
// are logged and dropped without retry.
type SendError struct {
	Permanent bool
	Reason    string
}

func (e *SendError) Error() string {
	if e.Permanent {
		return "permanent delivery failure: " + e.Reason
	}
	return "transient delivery failure: " + e.Reason
}

// PermanentFailure reports whether err is a delivery failure that invalidates
// the device token.
func PermanentFailure(err error) bool {
	sendErr, ok := err.(*SendError)
	return ok && sendErr.Permanent
}

// Dispatcher delivers a push message to a single device token.
type Dispatcher interface {
	Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}
