package tri3d

// RasterizerStatistics holds the four counters maintained across a
// rasterizer's commit/draw cycle.
type RasterizerStatistics struct {
	CommittedTriangles int64
	ScheduledTriangles int64
	BinnedTriangles    int64
	FragmentsDrawn     int64
}

// Smoothed returns an integer-weighted exponential moving average of prev
// and the receiver's counters: smooth = (alpha*current + (100-alpha)*prev)/100.
// alpha must be in [0,100].
func (s RasterizerStatistics) Smoothed(prev RasterizerStatistics, alpha int64) RasterizerStatistics {
	return RasterizerStatistics{
		CommittedTriangles: ema(s.CommittedTriangles, prev.CommittedTriangles, alpha),
		ScheduledTriangles: ema(s.ScheduledTriangles, prev.ScheduledTriangles, alpha),
		BinnedTriangles:    ema(s.BinnedTriangles, prev.BinnedTriangles, alpha),
		FragmentsDrawn:     ema(s.FragmentsDrawn, prev.FragmentsDrawn, alpha),
	}
}

func ema(current, prev, alpha int64) int64 {
	return (alpha*current + (100-alpha)*prev) / 100
}
