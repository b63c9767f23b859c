package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the liquidation engine.
type Metrics struct {
	// --- Core processing ---
	CoreEventsApplied  *prometheus.CounterVec
	CoreEventsRejected *prometheus.CounterVec
	CoreEventDuration  *prometheus.HistogramVec
	CoreSequence       prometheus.Gauge

	// --- Positions ---
	PositionsOpened prometheus.Counter
	PositionsClosed *prometheus.CounterVec
	ActivePositions prometheus.Gauge

	// --- Liquidation ---
	LiquidationSteps      prometheus.Counter
	CollateralLiquidated  prometheus.Counter
	DebtRepaid            prometheus.Counter
	PenaltyDistributed    *prometheus.CounterVec
	SaturationWarnings    prometheus.Counter
	BatchPositionFailures prometheus.Counter

	// --- Ordering & dedup ---
	PriceOutOfOrder       prometheus.Counter
	IdempotencyDuplicates *prometheus.CounterVec
	DedupLRUSize          prometheus.Gauge

	// --- Channels & backpressure ---
	ChannelSize         *prometheus.GaugeVec
	ChannelCapacity     *prometheus.GaugeVec
	ProjectionDrops     prometheus.Counter
	PersistBackpressure prometheus.Counter

	// --- Persistence & projection ---
	PersistEventsWritten prometheus.Counter
	PersistBatchDur      prometheus.Histogram
	PersistErrors        prometheus.Counter
	ProjectionUpdateDur  prometheus.Histogram
	ProjectionLagSeq     prometheus.Gauge

	// --- Ingestion ---
	NATSMessagesReceived *prometheus.CounterVec
	NATSParseErrors      *prometheus.CounterVec
	PublishDrops         prometheus.Counter

	// --- Snapshots ---
	SnapshotTaken    prometheus.Counter
	SnapshotDuration prometheus.Histogram
	SnapshotLastSeq  prometheus.Gauge
}

// NewMetrics registers all metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CoreEventsApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "liq_core_events_applied_total",
			Help: "Events applied by the liquidation core, by type.",
		}, []string{"event_type"}),
		CoreEventsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "liq_core_events_rejected_total",
			Help: "Events rejected by the core, by type and reason.",
		}, []string{"event_type", "reason"}),
		CoreEventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "liq_core_event_duration_seconds",
			Help:    "Core processing time per event.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"event_type"}),
		CoreSequence: factory.NewGauge(prometheus.GaugeOpts{
			Name: "liq_core_sequence",
			Help: "Current global event sequence.",
		}),

		PositionsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_positions_opened_total",
			Help: "Positions opened.",
		}),
		PositionsClosed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "liq_positions_closed_total",
			Help: "Positions closed, by reason (liquidated, repaid).",
		}, []string{"reason"}),
		ActivePositions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "liq_active_positions",
			Help: "Currently active positions.",
		}),

		LiquidationSteps: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_liquidation_steps_total",
			Help: "Partial liquidation steps executed.",
		}),
		CollateralLiquidated: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_collateral_liquidated_units_total",
			Help: "Collateral converted, in base units.",
		}),
		DebtRepaid: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_debt_repaid_units_total",
			Help: "Debt retired through liquidation, in base units.",
		}),
		PenaltyDistributed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "liq_penalty_distributed_units_total",
			Help: "Penalty distributed, by beneficiary (lp, taker).",
		}, []string{"beneficiary"}),
		SaturationWarnings: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_arithmetic_saturation_total",
			Help: "Penalty or conversion computations that saturated.",
		}),
		BatchPositionFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_batch_position_failures_total",
			Help: "Per-position failures isolated during price-update batches.",
		}),

		PriceOutOfOrder: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_price_out_of_order_total",
			Help: "Price updates rejected for violating per-market ordering.",
		}),
		IdempotencyDuplicates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "liq_idempotency_duplicates_total",
			Help: "Duplicate events skipped, by tier (lru, postgres).",
		}, []string{"event_type", "tier"}),
		DedupLRUSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "liq_dedup_lru_size",
			Help: "Entries in the idempotency LRU.",
		}),

		ChannelSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "liq_channel_size",
			Help: "Buffered items per channel.",
		}, []string{"channel"}),
		ChannelCapacity: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "liq_channel_capacity",
			Help: "Capacity per channel.",
		}, []string{"channel"}),
		ProjectionDrops: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_projection_drops_total",
			Help: "Outputs dropped on the projection channel.",
		}),
		PersistBackpressure: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_persist_backpressure_total",
			Help: "Times the core blocked on the persist channel.",
		}),

		PersistEventsWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_persist_events_written_total",
			Help: "Events written to the event log.",
		}),
		PersistBatchDur: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "liq_persist_batch_duration_seconds",
			Help:    "Postgres batch write duration.",
			Buckets: prometheus.ExponentialBuckets(1e-4, 4, 10),
		}),
		PersistErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_persist_errors_total",
			Help: "Failed event-log writes.",
		}),
		ProjectionUpdateDur: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "liq_projection_update_duration_seconds",
			Help:    "Projection table update duration.",
			Buckets: prometheus.ExponentialBuckets(1e-4, 4, 10),
		}),
		ProjectionLagSeq: factory.NewGauge(prometheus.GaugeOpts{
			Name: "liq_projection_lag_sequence",
			Help: "Core sequence minus projection watermark.",
		}),

		NATSMessagesReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "liq_nats_messages_received_total",
			Help: "NATS messages received, by subject class.",
		}, []string{"subject"}),
		NATSParseErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "liq_nats_parse_errors_total",
			Help: "NATS payloads that failed to parse, by subject class.",
		}, []string{"subject"}),
		PublishDrops: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_publish_drops_total",
			Help: "Outbound notifications dropped by the publisher.",
		}),

		SnapshotTaken: factory.NewCounter(prometheus.CounterOpts{
			Name: "liq_snapshots_taken_total",
			Help: "Snapshots captured and persisted.",
		}),
		SnapshotDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "liq_snapshot_duration_seconds",
			Help:    "Snapshot capture and persist duration.",
			Buckets: prometheus.ExponentialBuckets(1e-3, 4, 10),
		}),
		SnapshotLastSeq: factory.NewGauge(prometheus.GaugeOpts{
			Name: "liq_snapshot_last_sequence",
			Help: "Sequence of the most recent snapshot.",
		}),
	}
}

// NewDefaultMetrics registers against the default Prometheus registry.
func NewDefaultMetrics() *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer)
}
