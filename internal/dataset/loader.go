package dataset

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"call-intelligence-go/internal/logger"
)

// TranscriptRow is one call to analyze in batch mode.
type TranscriptRow struct {
	CallID     string
	Transcript string
}

// LoadTranscripts reads the first sheet, detecting the call id and transcript
// columns from the header. Rows without a transcript are skipped; rows
// without an id get a fresh one.
func LoadTranscripts(path string) ([]TranscriptRow, error) {
	log := logger.Component("dataset.loader").WithField("path", path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	idIdx, textIdx := detectColumns(rows[0])
	if textIdx == -1 {
		return nil, fmt.Errorf("no transcript column in header %v", rows[0])
	}
	log.WithField("id_idx", idIdx).WithField("transcript_idx", textIdx).Info("detected dataset columns")

	var out []TranscriptRow
	for i, r := range rows {
		if i == 0 {
			continue
		}
		row := TranscriptRow{}
		if textIdx < len(r) {
			row.Transcript = strings.TrimSpace(r[textIdx])
		}
		if row.Transcript == "" {
			continue
		}
		if idIdx >= 0 && idIdx < len(r) {
			row.CallID = strings.TrimSpace(r[idIdx])
		}
		if row.CallID == "" {
			row.CallID = uuid.NewString()
		}
		out = append(out, row)
	}
	log.WithField("rows", len(out)).Info("transcripts loaded")
	return out, nil
}

func detectColumns(header []string) (idIdx, textIdx int) {
	idIdx, textIdx = -1, -1
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "transcript") || l == "text":
			if textIdx == -1 {
				textIdx = i
			}
		case strings.Contains(l, "call id") || strings.Contains(l, "call_id") || strings.Contains(l, "callid") || l == "id":
			if idIdx == -1 {
				idIdx = i
			}
		}
	}
	return idIdx, textIdx
}
