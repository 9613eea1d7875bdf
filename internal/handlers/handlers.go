package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Srushti24695/tonalize/internal/analysis"
	"github.com/Srushti24695/tonalize/internal/auth"
	"github.com/Srushti24695/tonalize/internal/imagedecode"
	"github.com/Srushti24695/tonalize/internal/usecase"
)

// MaxUploadSize bounds the accepted image payload.
const MaxUploadSize = 8 << 20

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// RegisterRoutes wires the HTTP handlers to the Gin router. All routes
// that touch user data sit behind the auth middleware; palette reference
// data and health stay public.
func RegisterRoutes(router *gin.Engine, uc *usecase.AnalysisUseCase, authMiddleware gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/palettes/:season", func(c *gin.Context) {
		season := analysis.Season(strings.ToLower(c.Param("season")))
		if !analysis.ValidSeason(season) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown season"})
			return
		}
		best, neutral, avoid := analysis.PaletteColors(season)
		c.JSON(http.StatusOK, gin.H{
			"season":         season,
			"best_colors":    best,
			"neutral_colors": neutral,
			"avoid_colors":   avoid,
		})
	})

	authorized := router.Group("/", authMiddleware)

	authorized.POST("/analyze", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		if file.Size > MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
			return
		}
		if ct := file.Header.Get("Content-Type"); !allowedContentTypes[ct] {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported image type"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open image"})
			return
		}
		defer src.Close()

		data, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
			return
		}
		if len(data) > MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
			return
		}

		requestID, result, err := uc.AnalyzeImage(c.Request.Context(), userID, data)
		if err != nil {
			if errors.Is(err, imagedecode.ErrUnprocessableImage) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "image cannot be decoded"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"request_id": requestID,
			"result":     result,
		})
	})

	authorized.GET("/result/:id", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}
		requestID := c.Param("id")
		if requestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
			return
		}

		log, err := uc.GetResult(c.Request.Context(), userID, requestID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}

		best, neutral, avoid := analysis.PaletteColors(analysis.Season(log.Season))
		c.JSON(http.StatusOK, gin.H{
			"request_id":     log.RequestID,
			"user_id":        log.UserID,
			"undertone":      log.Undertone,
			"skin_label":     log.SkinLabel,
			"season":         log.Season,
			"face_detected":  log.FaceDetected,
			"best_colors":    best,
			"neutral_colors": neutral,
			"avoid_colors":   avoid,
			"created_at":     log.CreatedAt,
		})
	})

	authorized.GET("/duplicates/:id", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		report, err := uc.GetDuplicateReport(c.Request.Context(), userID, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
			return
		}

		duplicates := make([]gin.H, 0, len(report.Duplicates))
		for _, d := range report.Duplicates {
			duplicates = append(duplicates, gin.H{
				"request_id": d.RequestID,
				"season":     d.Season,
				"undertone":  d.Undertone,
				"created_at": d.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"request_id": report.Request.RequestID,
			"sha1_hash":  report.Request.SHA1Hash,
			"duplicates": duplicates,
		})
	})

	authorized.GET("/metrics", func(c *gin.Context) {
		summary, err := uc.GetMetricsSummary(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate metrics"})
			return
		}
		c.JSON(http.StatusOK, summary)
	})
}
