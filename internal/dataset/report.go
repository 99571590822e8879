package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"call-intelligence-go/internal/types"
)

const reportSheet = "Calls"

var reportHeader = []interface{}{
	"Call ID", "Customer Name", "Phone", "Account", "Card",
	"Intent", "Intent Confidence", "Sentiment", "Sentiment Score",
	"Priority", "Risk Level", "Final Intent", "Final Priority",
	"Action Items", "Verifier Reasoning", "Summary", "Transcript",
}

// WriteReport writes one row per record to a "Calls" sheet.
func WriteReport(w io.Writer, records []types.CallRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), reportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(reportSheet, "A1", &reportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.CallID,
			r.CustomerDetails.Name,
			r.CustomerDetails.PhoneNumber,
			r.CustomerDetails.AccountNumber,
			r.CustomerDetails.CardNumber,
			r.Intent.Label,
			r.Intent.Confidence,
			r.Sentiment.Label,
			r.Sentiment.Score,
			r.Priority,
			r.RiskLevel,
			r.FinalDecision.Intent,
			r.FinalDecision.Priority,
			strings.Join(r.ActionItems, "; "),
			strings.Join(r.AIVerification.Reasoning, "; "),
			strings.Join(r.Summary, "\n"),
			r.Transcript,
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
