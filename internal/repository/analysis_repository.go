package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Srushti24695/tonalize/internal/logging"
)

// AnalysisLog is one persisted analysis outcome. The full color lists are
// not stored; they are a pure lookup from undertone and season.
type AnalysisLog struct {
	ID            uint      `gorm:"primaryKey"`
	RequestID     string    `gorm:"column:request_id;uniqueIndex;size:64"`
	UserID        string    `gorm:"column:user_id;index;size:64"`
	Undertone     string    `gorm:"column:undertone;size:16"`
	SkinLabel     string    `gorm:"column:skin_label;size:64"`
	Season        string    `gorm:"column:season;size:16"`
	FaceDetected  bool      `gorm:"column:face_detected"`
	FromCache     bool      `gorm:"column:from_cache"`
	SHA1Hash      string    `gorm:"column:sha1_hash;index;size:40"`
	SignatureHash int       `gorm:"column:signature_hash"`
	Details       string    `gorm:"column:details;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (AnalysisLog) TableName() string {
	return "analysis_logs"
}

// MetricsAggregation holds the raw aggregates behind the metrics summary.
type MetricsAggregation struct {
	TotalCount        int64 `gorm:"column:total_count"`
	FaceDetectedCount int64 `gorm:"column:face_detected_count"`
	CacheHitCount     int64 `gorm:"column:cache_hit_count"`
	WarmCount         int64 `gorm:"column:warm_count"`
	CoolCount         int64 `gorm:"column:cool_count"`
	NeutralCount      int64 `gorm:"column:neutral_count"`
}

// AnalysisRepository provides persistence for analysis logs with bounded
// retries around transient database failures.
type AnalysisRepository struct {
	db             *gorm.DB
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewAnalysisRepository creates a repository bound to the given database.
func NewAnalysisRepository(db *gorm.DB, logger *zap.Logger) *AnalysisRepository {
	return &AnalysisRepository{
		db:             db,
		logger:         logger.Named("analysis_repository"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// AutoMigrate ensures the schema is available.
func (r *AnalysisRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&AnalysisLog{})
}

// SaveLog persists one analysis outcome.
func (r *AnalysisRepository) SaveLog(ctx context.Context, log *AnalysisLog) error {
	return r.executeWithRetry(ctx, "repository.save_log", log.RequestID, func() error {
		return r.db.WithContext(ctx).Create(log).Error
	})
}

// FindByRequestIDAndUser retrieves the log matching the request and owner.
func (r *AnalysisRepository) FindByRequestIDAndUser(ctx context.Context, requestID, userID string) (*AnalysisLog, error) {
	var log AnalysisLog
	err := r.executeWithRetry(ctx, "repository.find_by_request", requestID, func() error {
		return r.db.WithContext(ctx).First(&log, "request_id = ? AND user_id = ?", requestID, userID).Error
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// FindDuplicatesByHash lists the user's other analyses of a byte-identical
// upload, newest first.
func (r *AnalysisRepository) FindDuplicatesByHash(ctx context.Context, userID, hash, excludeRequestID string) ([]*AnalysisLog, error) {
	var logs []*AnalysisLog
	err := r.executeWithRetry(ctx, "repository.find_duplicates", excludeRequestID, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ? AND sha1_hash = ? AND request_id <> ?", userID, hash, excludeRequestID).
			Order("created_at DESC").
			Find(&logs).Error
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// AggregateMetrics computes service-wide counters over all stored logs.
func (r *AnalysisRepository) AggregateMetrics(ctx context.Context) (*MetricsAggregation, error) {
	var agg MetricsAggregation
	err := r.executeWithRetry(ctx, "repository.aggregate_metrics", "", func() error {
		return r.db.WithContext(ctx).Model(&AnalysisLog{}).
			Select(`COUNT(*) AS total_count,
				COALESCE(SUM(CASE WHEN face_detected THEN 1 ELSE 0 END), 0) AS face_detected_count,
				COALESCE(SUM(CASE WHEN from_cache THEN 1 ELSE 0 END), 0) AS cache_hit_count,
				COALESCE(SUM(CASE WHEN undertone = 'warm' THEN 1 ELSE 0 END), 0) AS warm_count,
				COALESCE(SUM(CASE WHEN undertone = 'cool' THEN 1 ELSE 0 END), 0) AS cool_count,
				COALESCE(SUM(CASE WHEN undertone = 'neutral' THEN 1 ELSE 0 END), 0) AS neutral_count`).
			Scan(&agg).Error
	})
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

// executeWithRetry runs fn, retrying transient failures with capped
// exponential backoff. Non-transient errors and exhausted attempts come
// back wrapped in an OperationError.
func (r *AnalysisRepository) executeWithRetry(ctx context.Context, operation, requestID string, fn func() error) error {
	if r.retryAttempts <= 1 {
		return logging.NewOperationError(operation, requestID, fn())
	}

	backoff := r.initialBackoff
	opLogger := logging.WithOperation(r.logger, operation, requestID)
	var err error
	for attempt := 0; attempt < r.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= r.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("database operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransient(err) || attempt == r.retryAttempts-1 {
			opLogger.Error("database operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient database error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return true
	}
	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}
	return false
}
