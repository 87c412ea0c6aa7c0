package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mcoot/wordscramble/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error. Rejected words keep their reason in JSON
// output.
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		var apiErr *APIError
		var rejection *model.RejectionError
		if errors.As(err, &rejection) {
			apiErr = &APIError{
				Code:    "WORD_REJECTED",
				Reason:  string(rejection.Reason),
				Title:   rejection.Title,
				Message: rejection.Message,
			}
		}
		if apiErr != nil || errors.As(err, &apiErr) {
			data, _ := json.Marshal(ErrorResponse{Error: *apiErr})
			_, _ = fmt.Fprintln(o.errOut, string(data))
			return
		}
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		_, _ = fmt.Fprintln(o.errOut, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.out, string(data))
	} else {
		_, _ = fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Game response type (matches API)
type Game struct {
	ID       string `json:"id"`
	RootWord string `json:"root_word"`
	Words    []Word `json:"words"`
	Score    int    `json:"score"`
	Language string `json:"language"`
	Restarts int    `json:"restarts"`
}

// Word response type
type Word struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	if g.ID != "" {
		_, _ = fmt.Fprintf(o.out, "Game: %s\n", g.ID)
	}
	_, _ = fmt.Fprintf(o.out, "Root word: %s\n", g.RootWord)
	_, _ = fmt.Fprintf(o.out, "Score: %d\n", g.Score)
	if len(g.Words) == 0 {
		_, _ = fmt.Fprintln(o.out, "No words yet")
		return
	}
	_, _ = fmt.Fprintf(o.out, "Words (%d):\n", len(g.Words))
	for _, w := range g.Words {
		_, _ = fmt.Fprintf(o.out, "  %2d  %s\n", w.Points, w.Word)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.out, "Status: %s\n", h.Status)
}
