package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"call-intelligence-go/internal/actionable"
	"call-intelligence-go/internal/aggregator"
	"call-intelligence-go/internal/dataset"
	"call-intelligence-go/internal/logger"
	"call-intelligence-go/internal/store"
	"call-intelligence-go/internal/upload"
)

const (
	statusProcessing = "processing"
	statusFailed     = "failed"

	// multipartOverhead leaves room for boundaries and form fields on top of the file.
	multipartOverhead int64 = 1 << 20
	multipartMemory   int64 = 8 << 20
)

// Submitter starts background processing of an uploaded call.
type Submitter interface {
	Submit(callID, audioPath string, cleanup func())
}

type Handler struct {
	Store          store.Store
	Runner         Submitter
	Uploads        *upload.TempStore
	MaxUploadBytes int64
}

type analyzeResponse struct {
	CallID string `json:"call_id"`
}

type statusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type statsResponse struct {
	Insight    aggregator.Insight    `json:"insight"`
	ActionCard actionable.ActionCard `json:"action_card"`
}

func (h *Handler) maxUpload() int64 {
	if h.MaxUploadBytes > 0 {
		return h.MaxUploadBytes
	}
	return upload.DefaultMaxBytes
}

// Analyze accepts a multipart "file" upload and answers with a fresh call id
// while transcription and analysis continue in the background.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "analyze")

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload()+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, &upload.ValidationError{Status: http.StatusRequestEntityTooLarge, Message: "file too large"})
			return
		}
		writeError(w, &upload.ValidationError{Status: http.StatusBadRequest, Message: "expected multipart form with a file field"})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, hdr, err := r.FormFile("file")
	if err != nil {
		writeError(w, &upload.ValidationError{Status: http.StatusBadRequest, Message: "missing file field"})
		return
	}
	defer file.Close()

	if err := upload.Validate(hdr.Header.Get("Content-Type"), hdr.Size, h.maxUpload()); err != nil {
		reqLog.WithError(err).Warn("upload rejected")
		writeError(w, err)
		return
	}

	callID := uuid.NewString()
	path, cleanup, err := h.Uploads.Save(callID, hdr.Filename, file)
	if err != nil {
		reqLog.WithError(err).Error("failed to store upload")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to store upload"})
		return
	}

	h.Runner.Submit(callID, path, cleanup)
	reqLog.WithField("call_id", callID).WithField("size", hdr.Size).Info("call accepted")
	writeJSON(w, http.StatusAccepted, analyzeResponse{CallID: callID})
}

// Result returns the finished record, or {"status":"processing"} for ids
// that are unknown or still running.
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	callID := r.PathValue("call_id")
	if rec, ok := h.Store.Get(callID); ok {
		writeJSON(w, http.StatusOK, rec)
		return
	}
	if reason, failed := h.Store.Failure(callID); failed {
		writeJSON(w, http.StatusInternalServerError, statusResponse{Status: statusFailed, Error: reason})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: statusProcessing})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ins := aggregator.Aggregate(h.Store.List())
	writeJSON(w, http.StatusOK, statsResponse{Insight: ins, ActionCard: actionable.Generate(ins)})
}

// Export streams every stored record as an xlsx workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := dataset.WriteReport(&buf, h.Store.List()); err != nil {
		logger.New().WithRequest(r).WithField("error", err.Error()).Error("export failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "export failed"})
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="calls.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func writeError(w http.ResponseWriter, err error) {
	var ve *upload.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, ve.Status, map[string]string{"error": ve.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}
