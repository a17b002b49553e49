// Package metrics exposes Prometheus instrumentation for the websocket
// session. Collectors register on the default registry so that embedding
// applications pick them up through their existing /metrics handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConnectsTotal counts successful websocket handshakes, initial and after loss.
	ConnectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "superchain",
		Subsystem: "client",
		Name:      "connects_total",
		Help:      "Successful websocket connections established.",
	})

	// ReconnectAttemptsTotal counts reconnect attempts by result (success, failed).
	ReconnectAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "superchain",
		Subsystem: "client",
		Name:      "reconnect_attempts_total",
		Help:      "Reconnect attempts after connection loss, by result.",
	}, []string{"result"})

	// FramesTotal counts received frames by kind (start, continue, error, ...).
	FramesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "superchain",
		Subsystem: "client",
		Name:      "frames_total",
		Help:      "Frames received from the server, by kind.",
	}, []string{"kind"})

	// DroppedFramesTotal counts frames discarded because no consumer was
	// registered under their request id.
	DroppedFramesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "superchain",
		Subsystem: "client",
		Name:      "dropped_frames_total",
		Help:      "Frames dropped for lack of a pending consumer.",
	})

	// ResubscribesTotal counts requests replayed after a reconnect.
	ResubscribesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "superchain",
		Subsystem: "client",
		Name:      "resubscribes_total",
		Help:      "Subscription replays issued after reconnecting.",
	})

	// ActiveStreams tracks streams with a live consumer.
	ActiveStreams = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "superchain",
		Subsystem: "client",
		Name:      "active_streams",
		Help:      "Streams currently open.",
	})
)
