package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Srushti24695/tonalize/internal/analysis"
	"github.com/Srushti24695/tonalize/internal/logging"
	"github.com/Srushti24695/tonalize/internal/repository"
)

// AnalysisRepository defines the persistence operations needed by the use case.
type AnalysisRepository interface {
	SaveLog(ctx context.Context, log *repository.AnalysisLog) error
	FindByRequestIDAndUser(ctx context.Context, requestID, userID string) (*repository.AnalysisLog, error)
	FindDuplicatesByHash(ctx context.Context, userID, hash, excludeRequestID string) ([]*repository.AnalysisLog, error)
	AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error)
}

// Decoder turns uploaded bytes into a pixel buffer for the core.
type Decoder interface {
	Decode(data []byte) (*analysis.PixelBuffer, error)
}

// Analyzer is the analysis core as seen by the use case.
type Analyzer interface {
	Analyze(buf *analysis.PixelBuffer) analysis.Result
	DetectFace(buf *analysis.PixelBuffer) analysis.Detection
}

// AnalysisUseCase orchestrates decoding, the analysis pipeline, caching,
// and persistence for one upload.
type AnalysisUseCase struct {
	repo           AnalysisRepository
	cache          Cache
	decoder        Decoder
	analyzer       Analyzer
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

type cachedAnalysis struct {
	RequestID    string    `json:"request_id"`
	UserID       string    `json:"user_id"`
	Undertone    string    `json:"undertone"`
	SkinLabel    string    `json:"skin_label"`
	Season       string    `json:"season"`
	FaceDetected bool      `json:"face_detected"`
	FromCache    bool      `json:"from_cache"`
	Hash         string    `json:"sha1_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// DuplicateReport lists prior analyses of the same uploaded bytes.
type DuplicateReport struct {
	Request    *repository.AnalysisLog
	Duplicates []*repository.AnalysisLog
}

// NewAnalysisUseCase constructs a use case instance.
func NewAnalysisUseCase(repo AnalysisRepository, cache Cache, decoder Decoder, analyzer Analyzer, logger *zap.Logger) *AnalysisUseCase {
	return &AnalysisUseCase{
		repo:           repo,
		cache:          cache,
		decoder:        decoder,
		analyzer:       analyzer,
		logger:         logger.Named("analysis_usecase"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// AnalyzeImage runs the full flow for one upload: mark the request as
// processing, decode, analyze, persist, and cache the outcome. The only
// analysis-level failure that propagates is an undecodable payload; the
// pipeline itself always produces a result.
func (uc *AnalysisUseCase) AnalyzeImage(ctx context.Context, userID string, imageBytes []byte) (string, *analysis.Result, error) {
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(uc.logger, "usecase.analyze_image", requestID)

	cacheKey := fmt.Sprintf("analysis:%s", requestID)
	if err := uc.withRedisRetry(ctx, requestID, "cache.set.processing", func() error {
		return uc.cache.Set(ctx, cacheKey, "processing", time.Minute)
	}); err != nil {
		opLogger.Error("failed to set processing flag", zap.Error(err))
		return "", nil, err
	}

	buf, err := uc.decoder.Decode(imageBytes)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.decode_image", requestID, err)
		opLogger.Warn("image decoding failed", zap.Error(wrapped))
		return "", nil, wrapped
	}

	result := uc.analyzer.Analyze(buf)

	sum := sha1.Sum(imageBytes)
	hashHex := hex.EncodeToString(sum[:])
	log := &repository.AnalysisLog{
		RequestID:     requestID,
		UserID:        userID,
		Undertone:     string(result.Undertone),
		SkinLabel:     result.SkinLabel,
		Season:        string(result.Season),
		FaceDetected:  result.FaceDetected,
		FromCache:     result.FromCache,
		SHA1Hash:      hashHex,
		SignatureHash: result.SignatureHash,
		CreatedAt:     time.Now().UTC(),
	}
	log.Details = fmt.Sprintf("undertone:%s season:%s face:%t hash:%s",
		result.Undertone, result.Season, result.FaceDetected, hashHex)
	if err := uc.repo.SaveLog(ctx, log); err != nil {
		wrapped := logging.NewOperationError("usecase.save_log", requestID, err)
		opLogger.Error("failed to persist analysis log", zap.Error(wrapped))
		return "", nil, wrapped
	}

	cached := cachedAnalysis{
		RequestID:    requestID,
		UserID:       userID,
		Undertone:    log.Undertone,
		SkinLabel:    log.SkinLabel,
		Season:       log.Season,
		FaceDetected: log.FaceDetected,
		FromCache:    log.FromCache,
		Hash:         log.SHA1Hash,
		CreatedAt:    log.CreatedAt,
	}
	serialized, err := json.Marshal(cached)
	if err != nil {
		opLogger.Error("failed to serialize analysis result", zap.Error(err))
		return "", nil, err
	}
	if err := uc.withRedisRetry(ctx, requestID, "cache.set.result", func() error {
		return uc.cache.Set(ctx, cacheKey, string(serialized), 5*time.Minute)
	}); err != nil {
		opLogger.Error("failed to cache analysis result", zap.Error(err))
		return "", nil, err
	}

	return requestID, &result, nil
}

// GetResult retrieves a completed analysis from the result cache, falling
// back to persistence on a miss.
func (uc *AnalysisUseCase) GetResult(ctx context.Context, userID, requestID string) (*repository.AnalysisLog, error) {
	cacheKey := fmt.Sprintf("analysis:%s", requestID)
	if cached, err := uc.withRedisGet(ctx, requestID, "cache.get.result", cacheKey); err == nil {
		var payload cachedAnalysis
		if err := json.Unmarshal([]byte(cached), &payload); err != nil {
			logging.WithOperation(uc.logger, "usecase.get_result", requestID).Warn("failed to decode cached result", zap.Error(err))
		} else {
			log := &repository.AnalysisLog{
				RequestID:    requestID,
				UserID:       userID,
				Undertone:    payload.Undertone,
				SkinLabel:    payload.SkinLabel,
				Season:       payload.Season,
				FaceDetected: payload.FaceDetected,
				FromCache:    payload.FromCache,
				SHA1Hash:     payload.Hash,
				CreatedAt:    payload.CreatedAt,
			}
			if payload.RequestID != "" {
				log.RequestID = payload.RequestID
			}
			if payload.UserID != "" {
				log.UserID = payload.UserID
			}
			return log, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logging.WithOperation(uc.logger, "usecase.get_result", requestID).Warn("failed to read cache", zap.Error(err))
	}

	return uc.repo.FindByRequestIDAndUser(ctx, requestID, userID)
}

// GetDuplicateReport finds repeat uploads of the same image bytes.
func (uc *AnalysisUseCase) GetDuplicateReport(ctx context.Context, userID, requestID string) (*DuplicateReport, error) {
	log, err := uc.repo.FindByRequestIDAndUser(ctx, requestID, userID)
	if err != nil {
		return nil, err
	}

	duplicates, err := uc.repo.FindDuplicatesByHash(ctx, userID, log.SHA1Hash, log.RequestID)
	if err != nil {
		return nil, err
	}

	return &DuplicateReport{Request: log, Duplicates: duplicates}, nil
}

func (uc *AnalysisUseCase) withRedisRetry(ctx context.Context, requestID, operation string, fn func() error) error {
	if uc.retryAttempts <= 1 {
		return logging.NewOperationError(operation, requestID, fn())
	}

	backoff := uc.initialBackoff
	opLogger := logging.WithOperation(uc.logger, operation, requestID)
	var err error
	for attempt := 0; attempt < uc.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= uc.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("redis operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == uc.retryAttempts-1 {
			opLogger.Error("redis operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient redis error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}

func (uc *AnalysisUseCase) withRedisGet(ctx context.Context, requestID, operation, cacheKey string) (string, error) {
	var result string
	err := uc.withRedisRetry(ctx, requestID, operation, func() error {
		value, err := uc.cache.Get(ctx, cacheKey)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}
	return false
}
