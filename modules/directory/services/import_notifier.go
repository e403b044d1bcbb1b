package services

import (
	"github.com/sirupsen/logrus"

	"github.com/refilllocal/directory/modules/directory/domain/entities/review"
	"github.com/refilllocal/directory/modules/directory/domain/entities/store"
	"github.com/refilllocal/directory/pkg/eventbus"
)

// ImportNotifier records committed import batches. Subscribed to the event
// bus at startup so commits stay decoupled from notification delivery.
type ImportNotifier struct {
	logger *logrus.Logger
}

func NewImportNotifier(logger *logrus.Logger) *ImportNotifier {
	return &ImportNotifier{logger: logger}
}

func (n *ImportNotifier) Register(bus eventbus.EventBus) {
	bus.Subscribe(n.onStoresImported)
	bus.Subscribe(n.onReviewsImported)
}

func (n *ImportNotifier) onStoresImported(event *store.ImportedEvent) {
	n.logger.WithFields(logrus.Fields{
		"city-id":     event.CityID,
		"operator-id": event.OperatorID,
		"count":       event.Count,
	}).Info("store import committed")
}

func (n *ImportNotifier) onReviewsImported(event *review.ImportedEvent) {
	n.logger.WithFields(logrus.Fields{
		"operator-id": event.OperatorID,
		"count":       event.Count,
	}).Info("review import committed")
}
