package main

import (
	"advisoryboard/internal/model"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskRequiresIdea(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestAskOfflineJSON(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PERSONAS_FILE", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--json", "Robot", "baristas"})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	var report model.EvaluationReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.Len(t, report.Results, 5)
	assert.Contains(t, report.Results[0].Response, "Robot baristas")
	assert.Equal(t, model.AggregateAvailable, report.AggregateStatus)
}

func TestAskBlankIdea(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"   "})
	cmd.SetOut(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestPrintReport(t *testing.T) {
	seven := 7
	avg := 7.0
	var out bytes.Buffer
	printReport(&out, &model.EvaluationReport{
		Results: []model.PersonaResult{
			{Persona: "CTO", Response: "7\nSolid.", Score: &seven},
			{Persona: "CFO", Response: model.ErrorResponseText},
		},
		AggregateScore:  &avg,
		AggregateStatus: model.AggregateAvailable,
	})

	text := out.String()
	assert.Contains(t, text, "== CTO (7/10)")
	assert.Contains(t, text, "== CFO (-)")
	assert.True(t, strings.HasSuffix(text, "Aggregate score: 7.0\n"))

	out.Reset()
	printReport(&out, &model.EvaluationReport{AggregateStatus: model.AggregateUnavailable})
	assert.Equal(t, "Aggregate score: unavailable\n", out.String())
}
