// Package pipeline runs submitted calls in the background: transcribe, analyze,
// store. Readers only ever see a finished record or nothing.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"call-intelligence-go/internal/logger"
	"call-intelligence-go/internal/metrics"
	"call-intelligence-go/internal/processor"
	"call-intelligence-go/internal/store"
	"call-intelligence-go/internal/transcription"
)

// Reason recorded for failed calls; details stay in the logs.
const failureReason = "transcription failed"

type Runner struct {
	transcriber transcription.Transcriber
	analyzer    *processor.Analyzer
	store       store.Store
	jobTimeout  time.Duration

	wg sync.WaitGroup
}

func NewRunner(t transcription.Transcriber, a *processor.Analyzer, s store.Store, jobTimeout time.Duration) *Runner {
	return &Runner{transcriber: t, analyzer: a, store: s, jobTimeout: jobTimeout}
}

// Submit processes the call asynchronously. cleanup runs on every exit path.
func (r *Runner) Submit(callID, audioPath string, cleanup func()) {
	metrics.CallsSubmitted.Inc()
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cleanup()
		defer func() {
			if p := recover(); p != nil {
				logger.Component("pipeline").WithCall(callID).WithField("panic", fmt.Sprint(p)).Error("call processing panicked")
				r.store.MarkFailed(callID, failureReason)
			}
		}()
		_ = r.Run(context.Background(), callID, audioPath)
	}()
}

// Run processes one call synchronously.
func (r *Runner) Run(ctx context.Context, callID, audioPath string) error {
	log := logger.Component("pipeline").WithCall(callID)
	start := time.Now()

	transcript, err := r.transcribe(ctx, audioPath)
	if err != nil {
		metrics.TranscriptionFailures.Inc()
		r.store.MarkFailed(callID, failureReason)
		log.WithError(err).Error("transcription failed")
		return fmt.Errorf("transcribe %s: %w", callID, err)
	}
	log.WithField("transcript_chars", len(transcript)).Info("transcription complete")

	rec := r.analyzer.Analyze(ctx, callID, transcript)
	if !r.store.InsertIfAbsent(callID, rec) {
		log.Warn("record already present, keeping the first one")
		return nil
	}
	metrics.CallsCompleted.WithLabelValues(metrics.IntentLabel(rec.FinalDecision.Intent)).Inc()
	log.WithField("duration_ms", time.Since(start).Milliseconds()).Info("call stored")
	return nil
}

func (r *Runner) transcribe(ctx context.Context, audioPath string) (string, error) {
	if r.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.jobTimeout)
		defer cancel()
	}
	return r.transcriber.Transcribe(ctx, audioPath)
}

// Wait blocks until every submitted call has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}
