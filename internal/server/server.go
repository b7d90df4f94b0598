package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/textsense/internal/analyzer"
	"github.com/spacesedan/textsense/internal/history"
)

// API holds the handler dependencies: one loaded analysis session and an
// optional history recorder.
type API struct {
	session  *analyzer.Session
	recorder *history.Recorder
	store    *history.Store
}

// NewAPI wraps a session; store may be nil when history is disabled.
func NewAPI(session *analyzer.Session, store *history.Store) *API {
	api := &API{session: session, store: store}
	if store != nil {
		api.recorder = history.NewRecorder(store)
	}
	return api
}

// SetupRoutes registers every route on the router.
func SetupRoutes(router *gin.Engine, api *API) {
	router.GET("/healthz", api.HealthHandler)
	router.POST("/analyze", api.AnalyzeHandler)
	router.GET("/history", api.HistoryHandler)
}

// Close flushes any history still buffered.
func (api *API) Close() {
	if api.recorder != nil {
		api.recorder.Close()
	}
}

type analyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

func (api *API) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AnalyzeHandler runs the full analysis for one document.
func (api *API) AnalyzeHandler(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	analysis, err := api.session.Predict(req.Text)
	if err != nil {
		if errors.Is(err, analyzer.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("[Server] Analysis failed",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if api.recorder != nil {
		api.recorder.Add(history.Entry{
			Timestamp:    time.Now(),
			Text:         analysis.Text,
			Label:        analysis.Label,
			Confidence:   analysis.Confidence,
			Sentiment:    analysis.Sentiment,
			Polarity:     analysis.Polarity,
			Subjectivity: analysis.Subjectivity,
			Mood:         string(analysis.Mood),
		})
	}

	c.JSON(http.StatusOK, analysis)
}

// HistoryHandler lists recent analyses, newest first.
func (api *API) HistoryHandler(c *gin.Context) {
	if api.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "history is not enabled"})
		return
	}

	if api.recorder != nil {
		api.recorder.Flush()
	}

	entries, err := api.store.Recent(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}
