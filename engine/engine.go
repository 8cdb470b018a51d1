package engine

import "othello/experiments/metrics"

type Engine interface {
	// Run plays a game until neither side can move or the ply guard is hit
	Run() (result Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
