/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable writes a human readable summary of result to w.
func RenderTable(w io.Writer, result *SuiteResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	t.SetTitle("Foody API scenario")

	t.AppendHeader(table.Row{"#", "STEP", "RESULT", "DURATION", "DETAIL"})

	for i, step := range result.Steps {
		t.AppendRow(table.Row{
			i + 1,
			step.Name,
			colorResult(step.Result),
			step.Duration.Round(time.Millisecond),
			detail(step),
		})
	}

	counts := result.Counts()

	t.AppendFooter(table.Row{
		"",
		"TOTAL",
		fmt.Sprintf("%d/%d passed", counts[ResultPassed], len(result.Steps)),
		result.Duration.Round(time.Millisecond),
		"",
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, WidthMax: 80},
	})

	t.Render()

	if result.SetupErr != nil {
		fmt.Fprintf(w, "%s %v\n", text.FgRed.Sprint("setup failed:"), result.SetupErr)
	}
}

func colorResult(result Result) string {
	switch result {
	case ResultPassed:
		return text.FgGreen.Sprint(result)
	case ResultFailed, ResultError:
		return text.FgRed.Sprint(result)
	case ResultSkipped:
		return text.FgYellow.Sprint(result)
	}

	return string(result)
}

func detail(step StepResult) string {
	if step.Err != nil {
		return step.Err.Error()
	}

	if step.Reason != "" {
		return step.Reason
	}

	return step.Description
}

type jsonStep struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Result      Result  `json:"result"`
	Error       string  `json:"error,omitempty"`
	Reason      string  `json:"reason,omitempty"`
	Seconds     float64 `json:"durationSeconds"`
}

type jsonReport struct {
	Passed   bool           `json:"passed"`
	SetupErr string         `json:"setupError,omitempty"`
	Counts   map[Result]int `json:"counts"`
	Seconds  float64        `json:"durationSeconds"`
	Steps    []jsonStep     `json:"steps"`
}

// RenderJSON writes result to w as an indented JSON document.
func RenderJSON(w io.Writer, result *SuiteResult) error {
	report := jsonReport{
		Passed:   result.Passed(),
		SetupErr: errString(result.SetupErr),
		Counts:   result.Counts(),
		Seconds:  result.Duration.Seconds(),
		Steps:    make([]jsonStep, 0, len(result.Steps)),
	}

	for _, step := range result.Steps {
		report.Steps = append(report.Steps, jsonStep{
			Name:        step.Name,
			Description: step.Description,
			Result:      step.Result,
			Error:       errString(step.Err),
			Reason:      step.Reason,
			Seconds:     step.Duration.Seconds(),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return nil
}
