package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tasktrack/internal/cli/styles"
)

// EmptyResultMessage is printed in human mode when a listing has no rows
const EmptyResultMessage = "Nothing found."

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Success emits the JSON envelope for data; in quiet mode it prints only the
// id when data has one. Human-readable output goes through Message and List.
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() int64 }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
	}

	return json.NewEncoder(os.Stdout).Encode(map[string]any{
		"success": true,
		"data":    data,
	})
}

// Message prints a one-line human confirmation; JSON mode emits data instead
// and quiet mode prints only the id.
func (f *OutputFormatter) Message(id int64, data any, message string) error {
	if f.Quiet {
		fmt.Printf("%d\n", id)
		return nil
	}
	if f.JSON {
		return f.Success(data)
	}
	_, err := lipgloss.Fprintln(os.Stdout, styles.SuccessStyle.Render(message))
	return err
}

// List outputs a result set: ids in quiet mode, data in JSON mode, or a table
func (f *OutputFormatter) List(data any, ids []int64, headers []string, rows [][]string) error {
	if f.Quiet {
		for _, id := range ids {
			fmt.Printf("%d\n", id)
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
			"count":   len(rows),
		})
	}

	if len(rows) == 0 {
		fmt.Println(EmptyResultMessage)
		return nil
	}

	_, err := lipgloss.Fprintln(os.Stdout, styles.RenderTable(headers, rows))
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	if _, err := lipgloss.Fprintln(os.Stderr, styles.ErrorStyle.Render("❌ Error: "+message)); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := lipgloss.Fprintln(os.Stderr, styles.WarningStyle.Render("💡 Suggestion: "+suggestion)); err != nil {
			return err
		}
	}
	return nil
}

// ReportError prints err with the code and suggestion matching its kind
func (f *OutputFormatter) ReportError(err error) error {
	var suggestion string
	switch ExitCodeFor(err) {
	case ExitUsage:
		suggestion = "Run the command with --help to see its flags"
	case ExitPrecondition:
		suggestion = "Run tasktrack-seed to create and populate the database"
	}
	return f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestion)
}
