package push

import (
	"context"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/alfdana/danashell/internal/logger"
)

// defaultMQTTTimeout bounds connect and subscribe operations when the
// configuration leaves the timeout unset.
const defaultMQTTTimeout = 10 * time.Second

// Subscriber receives push messages from an MQTT topic and publishes them
// onto the bus. It is the local boundary standing in for a real push
// delivery network.
type Subscriber struct {
	client  paho.Client
	topic   string
	timeout time.Duration
	bus     *Bus
	log     logger.Logger
}

// NewSubscriber creates an MQTT subscriber for the given broker and topic.
func NewSubscriber(broker, clientID, topic string, timeout time.Duration, bus *Bus, log logger.Logger) *Subscriber {
	if log == nil {
		log = logger.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultMQTTTimeout
	}

	s := &Subscriber{topic: topic, timeout: timeout, bus: bus, log: log}

	opts := paho.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetConnectTimeout(timeout)
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetOnConnectHandler(s.onConnect)
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		log.Warn("push broker connection lost", logger.Error(err))
	})
	s.client = paho.NewClient(opts)
	return s
}

// Start connects to the broker. Subscription happens in the connect
// handler so it is re-established after reconnects.
func (s *Subscriber) Start(ctx context.Context) error {
	token := s.client.Connect()
	if !waitToken(ctx, token, s.timeout) {
		return fmt.Errorf("push broker connect timed out")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to push broker: %w", err)
	}
	return nil
}

// Stop disconnects from the broker.
func (s *Subscriber) Stop() {
	s.client.Disconnect(250)
}

// IsConnected reports the broker connection state.
func (s *Subscriber) IsConnected() bool {
	return s.client.IsConnectionOpen()
}

func (s *Subscriber) onConnect(c paho.Client) {
	token := c.Subscribe(s.topic, 1, func(_ paho.Client, m paho.Message) {
		s.bus.Publish(&Message{Raw: m.Payload(), ReceivedAt: time.Now()})
	})
	if !token.WaitTimeout(s.timeout) || token.Error() != nil {
		s.log.Error("failed to subscribe to push topic",
			logger.String("topic", s.topic),
			logger.Error(token.Error()))
		return
	}
	s.log.Info("subscribed to push topic", logger.String("topic", s.topic))
}

// waitToken waits for a paho token honoring both the context and timeout.
func waitToken(ctx context.Context, token paho.Token, timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		token.WaitTimeout(timeout)
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}
