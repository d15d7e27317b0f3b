package sheet

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleAppender appends rows to the first sheet of a Google spreadsheet
// using a service-account credentials file.
type GoogleAppender struct {
	credentialsFile string
	spreadsheetID   string
}

// NewGoogleAppender creates an appender for the given spreadsheet.
// The Sheets service is built per append; the API applies its own timeouts.
func NewGoogleAppender(credentialsFile, spreadsheetID string) *GoogleAppender {
	return &GoogleAppender{
		credentialsFile: credentialsFile,
		spreadsheetID:   spreadsheetID,
	}
}

// Append adds one row at the bottom of the first sheet.
// POST: Row appended, or an error describing the API failure
func (g *GoogleAppender) Append(ctx context.Context, row []string) error {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(g.credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		slog.Error("sheet_service_failed", "error", err)
		return fmt.Errorf("sheets service: %w", err)
	}

	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{values}}

	_, err = svc.Spreadsheets.Values.Append(g.spreadsheetID, "A1", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		slog.Error("sheet_append_failed", "error", err, "spreadsheet", g.spreadsheetID)
		return fmt.Errorf("sheet append: %w", err)
	}

	slog.Info("sheet_appended", "spreadsheet", g.spreadsheetID, "columns", len(row))
	return nil
}
