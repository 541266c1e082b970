package audit

import "github.com/sirupsen/logrus"

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher writes audit events off the request path. The queue drops
// events when full: auditing must never block or fail an API call.
type Dispatcher struct {
	logger *Logger
	log    *logrus.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *logrus.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.WithError(err).Warn("audit write failed")
		}
	}
}

// Dispatch enqueues an event. A nil dispatcher means auditing is
// disabled and the event is discarded.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event")
	}
}
