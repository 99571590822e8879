package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"call-intelligence-go/internal/api"
	"call-intelligence-go/internal/config"
	"call-intelligence-go/internal/extractor"
	"call-intelligence-go/internal/logger"
	"call-intelligence-go/internal/pipeline"
	"call-intelligence-go/internal/processor"
	"call-intelligence-go/internal/store"
	"call-intelligence-go/internal/transcription"
	"call-intelligence-go/internal/upload"
	"call-intelligence-go/internal/verifier"
)

// Header reads are bounded tightly; bodies carry uploads of up to 25 MiB.
const (
	headerTimeout = 15 * time.Second
	bodyTimeout   = 5 * time.Minute
)

func newServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: headerTimeout,
		ReadTimeout:       bodyTimeout,
		WriteTimeout:      bodyTimeout,
		IdleTimeout:       120 * time.Second,
	}
}

func main() {
	config.LoadDotEnv()
	cfg := config.Load()
	logger.Configure(cfg.Environment, cfg.LogLevel)

	log := logger.New()
	log.WithField("service", "call-intelligence-go").Info("starting service")

	tr, err := transcription.New(cfg.Transcription)
	if err != nil {
		log.WithError(err).Fatal("failed to configure transcriber")
	}
	log.WithField("backend", cfg.Transcription.Backend).Info("transcriber ready")

	v := verifier.New(cfg.Verifier)
	if _, disabled := v.(verifier.Disabled); disabled {
		log.WithField("verifier", v.Name()).Warn("verifier not configured, using rule-based decisions")
	}

	uploads, err := upload.NewTempStore(cfg.UploadDir)
	if err != nil {
		log.WithError(err).Fatal("failed to prepare upload dir")
	}

	calls := store.NewMemory()
	analyzer := processor.NewAnalyzer(extractor.New(cfg.MaskPolicy()), v, cfg.VerifyTimeout)
	runner := pipeline.NewRunner(tr, analyzer, calls, cfg.JobTimeout)

	handler := &api.Handler{
		Store:          calls,
		Runner:         runner,
		Uploads:        uploads,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}
	if cfg.APIKey == "" {
		log.Warn("API_KEY not set, /api routes are open")
	}

	addr := ":" + cfg.Port
	srv := newServer(addr, api.NewRouter(handler, cfg.APIKey))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("addr", addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server terminated")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	// in-flight calls still own their temp files
	runner.Wait()
	log.Info("all calls drained")
}
