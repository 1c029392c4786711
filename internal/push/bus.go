package push

import (
	"sync"
	"time"
)

// eventBufferSize is the capacity of the async message channel. Messages
// are dropped if the buffer is full to avoid blocking the delivery channel.
const eventBufferSize = 1000

// Message is one raw push message with its arrival time.
type Message struct {
	Raw        []byte
	ReceivedAt time.Time
}

// Handler processes push messages.
type Handler func(msg *Message)

// Bus is an async pub/sub for incoming push messages. Publish is
// non-blocking: messages go to a buffered channel drained by a worker
// goroutine, so the MQTT receive path is never blocked by storage writes
// or notification display.
type Bus struct {
	handlers []Handler
	mu       sync.RWMutex
	msgCh    chan *Message
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewBus creates a push message bus and starts its worker.
func NewBus() *Bus {
	b := &Bus{
		msgCh:  make(chan *Message, eventBufferSize),
		stopCh: make(chan struct{}),
	}
	go b.processLoop()
	return b
}

// Subscribe registers a handler for push messages.
func (b *Bus) Subscribe(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Publish enqueues a message for async processing. Non-blocking: messages
// are dropped when the buffer is full or the bus is stopped.
func (b *Bus) Publish(msg *Message) {
	select {
	case <-b.stopCh:
		return
	default:
	}

	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = time.Now()
	}

	select {
	case b.msgCh <- msg:
	default:
		// Buffer full, drop to protect the receive path
	}
}

// Stop shuts down the worker goroutine. Safe to call multiple times.
func (b *Bus) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
	})
}

func (b *Bus) processLoop() {
	for {
		select {
		case msg := <-b.msgCh:
			b.dispatch(msg)
		case <-b.stopCh:
			// Drain remaining messages before exiting
			for {
				select {
				case msg := <-b.msgCh:
					b.dispatch(msg)
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) dispatch(msg *Message) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.safeCall(handler, msg)
	}
}

// safeCall invokes a handler with panic recovery so a panicking handler
// cannot kill the bus goroutine.
func (b *Bus) safeCall(handler Handler, msg *Message) {
	defer func() {
		recover() //nolint:errcheck // swallowed to keep the bus alive
	}()
	handler(msg)
}
