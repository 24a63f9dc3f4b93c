package processor

import (
	"time"

	"github.com/mauv0809/swiss-tournament/internal/metrics"
	"github.com/mauv0809/swiss-tournament/internal/pubsub"
)

// Processor runs tournament operations together with their side effects:
// metrics, published events and announcements.
type Processor struct {
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
	now      func() time.Time
}
