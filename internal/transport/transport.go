package transport

// StateSender sends encoded snapshots.
type StateSender interface {
	SendState(data []byte) error
}

// StateReceiver receives encoded snapshots.
type StateReceiver interface {
	OnState(callback func(data []byte))
}

// InputSender sends serialized input events.
type InputSender interface {
	SendInput(data []byte) error
}

// InputReceiver receives serialized input events.
type InputReceiver interface {
	OnInput(callback func(data []byte))
}
