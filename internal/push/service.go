package push

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alfdana/danashell/internal/logger"
	"github.com/alfdana/danashell/internal/observability/metrics"
	"github.com/alfdana/danashell/internal/store"
)

// subscriberBuffer is the per-subscriber channel capacity. Slow stream
// consumers drop broadcasts rather than block the pipeline.
const subscriberBuffer = 10

// Service turns incoming push messages into displayed notifications,
// stored records and live broadcasts, and dispatches notification clicks.
type Service struct {
	store    *store.Store
	notifier Notifier
	clients  ClientRegistry
	metrics  *metrics.Metrics
	log      logger.Logger

	subsMu sync.Mutex
	subs   map[string]chan *store.AppNotification
}

// NewService creates a push service. notifier and clients must be non-nil.
func NewService(s *store.Store, notifier Notifier, clients ClientRegistry, m *metrics.Metrics, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		store:    s,
		notifier: notifier,
		clients:  clients,
		metrics:  m,
		log:      log,
		subs:     make(map[string]chan *store.AppNotification),
	}
}

// HandleMessage processes one raw push message: decode, display, record,
// broadcast. Returns the stored notification.
func (s *Service) HandleMessage(msg *Message) *store.AppNotification {
	if s.metrics != nil {
		s.metrics.PushReceived.Inc()
	}
	payload, decoded := DecodePayload(msg.Raw)
	if !decoded && s.metrics != nil {
		s.metrics.PushDecodeFailures.Inc()
	}

	id := uuid.NewString()
	if err := s.notifier.Show(DisplayNotification{
		ID:        id,
		Title:     payload.Title,
		Body:      payload.Body,
		Icon:      notificationIcon,
		Badge:     notificationBadge,
		Vibration: vibrationPattern,
		Data:      NotificationData{URL: payload.URL},
	}); err != nil {
		// Display failure degrades to record-and-broadcast only.
		s.log.Warn("failed to display notification", logger.Error(err))
	}

	receivedAt := msg.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}
	n := store.AppNotification{
		ID:    id,
		Title: payload.Title,
		Body:  payload.Body,
		Date:  receivedAt.Format(time.RFC3339),
	}
	s.store.SaveNotification(n)
	s.broadcast(&n)
	return &n
}

// ClickOutcome reports how a notification click was dispatched.
type ClickOutcome string

const (
	ClickFocused ClickOutcome = "focused"
	ClickOpened  ClickOutcome = "opened"
)

// HandleClick dispatches a click on a displayed notification: the chrome
// is dismissed, then an open page whose URL exactly matches the target is
// focused, or a new window is opened at the target. The chrome is
// dismissed regardless of the match outcome.
func (s *Service) HandleClick(n DisplayNotification) ClickOutcome {
	s.notifier.Close(n.ID)

	target := n.Data.URL
	if target == "" {
		target = DefaultURL
	}
	for _, client := range s.clients.All() {
		if client.URL() == target {
			if err := client.Focus(); err != nil {
				s.log.Warn("failed to focus client", logger.String("url", target), logger.Error(err))
			}
			return ClickFocused
		}
	}
	if err := s.clients.OpenWindow(target); err != nil {
		s.log.Warn("failed to open window", logger.String("url", target), logger.Error(err))
	}
	return ClickOpened
}

// Subscribe registers a live notification stream. The returned ID is
// passed to Unsubscribe when the consumer disconnects.
func (s *Service) Subscribe() (string, <-chan *store.AppNotification) {
	id := uuid.NewString()
	ch := make(chan *store.AppNotification, subscriberBuffer)
	s.subsMu.Lock()
	s.subs[id] = ch
	s.subsMu.Unlock()
	return id, ch
}

// Unsubscribe removes a stream subscription and closes its channel.
func (s *Service) Unsubscribe(id string) {
	s.subsMu.Lock()
	ch, ok := s.subs[id]
	delete(s.subs, id)
	s.subsMu.Unlock()
	if ok {
		close(ch)
	}
}

func (s *Service) broadcast(n *store.AppNotification) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- n:
		default:
			// Subscriber is not draining; drop rather than block.
		}
	}
}
