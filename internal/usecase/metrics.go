package usecase

import "context"

// MetricsSummary aggregates analysis activity for the metrics endpoint.
type MetricsSummary struct {
	TotalRequests     int64   `json:"total_requests"`
	FaceDetectionRate float64 `json:"face_detection_rate"`
	CacheHitRate      float64 `json:"cache_hit_rate"`
	WarmCount         int64   `json:"warm_count"`
	CoolCount         int64   `json:"cool_count"`
	NeutralCount      int64   `json:"neutral_count"`
}

// GetMetricsSummary aggregates metrics from persisted analysis logs.
func (uc *AnalysisUseCase) GetMetricsSummary(ctx context.Context) (*MetricsSummary, error) {
	agg, err := uc.repo.AggregateMetrics(ctx)
	if err != nil {
		return nil, err
	}

	summary := &MetricsSummary{
		TotalRequests: agg.TotalCount,
		WarmCount:     agg.WarmCount,
		CoolCount:     agg.CoolCount,
		NeutralCount:  agg.NeutralCount,
	}
	if agg.TotalCount > 0 {
		summary.FaceDetectionRate = float64(agg.FaceDetectedCount) / float64(agg.TotalCount)
		summary.CacheHitRate = float64(agg.CacheHitCount) / float64(agg.TotalCount)
	}
	return summary, nil
}
