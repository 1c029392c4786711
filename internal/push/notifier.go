package push

import (
	"sync"

	"github.com/alfdana/danashell/internal/logger"
)

// Fixed notification chrome, kept identical to the installed app's.
const (
	notificationIcon  = "/icons/icon-192.png"
	notificationBadge = "/icons/icon-192.png"
)

// vibrationPattern is the fixed vibrate sequence in milliseconds.
var vibrationPattern = []int{200, 100, 200}

// DisplayNotification is a notification as shown to the user. Data.URL is
// the click target carried alongside the notification.
type DisplayNotification struct {
	ID        string
	Title     string
	Body      string
	Icon      string
	Badge     string
	Vibration []int
	Data      NotificationData
}

// NotificationData is the payload attached to a displayed notification.
type NotificationData struct {
	URL string
}

// Notifier displays and dismisses system notifications.
type Notifier interface {
	Show(n DisplayNotification) error
	// Close dismisses the notification chrome. Unknown IDs are ignored.
	Close(id string)
}

// TrackingNotifier records displayed notifications in memory. It is the
// default Notifier: the gateway has no device surface of its own, so
// "display" means keeping the notification retrievable until dismissed.
type TrackingNotifier struct {
	mu   sync.Mutex
	open map[string]DisplayNotification
	log  logger.Logger
}

// NewTrackingNotifier creates an empty TrackingNotifier.
func NewTrackingNotifier(log logger.Logger) *TrackingNotifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &TrackingNotifier{open: make(map[string]DisplayNotification), log: log}
}

func (t *TrackingNotifier) Show(n DisplayNotification) error {
	t.mu.Lock()
	t.open[n.ID] = n
	t.mu.Unlock()
	t.log.Info("notification displayed",
		logger.String("id", n.ID),
		logger.String("title", n.Title))
	return nil
}

func (t *TrackingNotifier) Close(id string) {
	t.mu.Lock()
	delete(t.open, id)
	t.mu.Unlock()
}

// Get returns a currently displayed notification by ID.
func (t *TrackingNotifier) Get(id string) (DisplayNotification, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, ok := t.open[id]
	return n, ok
}

// Open returns the number of currently displayed notifications.
func (t *TrackingNotifier) Open() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.open)
}
