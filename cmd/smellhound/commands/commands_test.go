package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/smellhound/internal/harness"
)

func TestSplitRequest_RoutesByPrefix(t *testing.T) {
	t.Parallel()

	patternReq, metricReq := splitRequest(
		[]string{"P13", "M4", "P20_5"},
		[]string{"M2", "P1"},
	)

	assert.Equal(t, []string{"P13", "P20_5"}, patternReq.Only)
	assert.Equal(t, []string{"M4"}, metricReq.Only)
	assert.Equal(t, []string{"P1"}, patternReq.Without)
	assert.Equal(t, []string{"M2"}, metricReq.Without)
}

func TestSplitRequest_EmptyKeepsDefaults(t *testing.T) {
	t.Parallel()

	patternReq, metricReq := splitRequest(nil, nil)

	assert.Empty(t, patternReq.Only)
	assert.Empty(t, patternReq.Without)
	assert.Empty(t, metricReq.Only)
	assert.Empty(t, metricReq.Without)
}

func sampleReport() *harness.Report {
	return &harness.Report{
		Patterns: []harness.PatternResult{
			{Code: "P13", Name: "Null check", Lines: []int{4, 9}},
			{Code: "P1", Name: "Asserts", Lines: []int{}, Err: errors.New("analyzer fault: P1: boom")},
		},
		Metrics: []harness.MetricResult{
			{Code: "M2", Name: "NCSS", Score: 12},
		},
	}
}

func TestRender_JSON(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer

	cmd := &CheckCommand{format: formatJSON}
	require.NoError(t, cmd.render(&buffer, sampleReport()))

	var decoded reportView
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))

	require.Len(t, decoded.Patterns, 2)
	assert.Equal(t, []int{4, 9}, decoded.Patterns[0].Lines)
	assert.Empty(t, decoded.Patterns[0].Error)
	assert.Equal(t, "analyzer fault: P1: boom", decoded.Patterns[1].Error)

	require.Len(t, decoded.Metrics, 1)
	assert.Equal(t, 12, decoded.Metrics[0].Score)
}

func TestRender_YAML(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer

	cmd := &CheckCommand{format: formatYAML}
	require.NoError(t, cmd.render(&buffer, sampleReport()))

	var decoded reportView
	require.NoError(t, yaml.Unmarshal(buffer.Bytes(), &decoded))

	require.Len(t, decoded.Patterns, 2)
	assert.Equal(t, "P13", decoded.Patterns[0].Code)
}

func TestRender_Text(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer

	cmd := &CheckCommand{format: formatText, noColor: true}
	require.NoError(t, cmd.render(&buffer, sampleReport()))

	output := buffer.String()

	assert.Contains(t, output, "Null check: lines 4, 9")
	assert.Contains(t, output, "analyzer fault: P1: boom")
	assert.Contains(t, output, "NCSS: 12")
	assert.Contains(t, output, "2 pattern findings across 2 codes")
}

func TestRender_UnknownFormat(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer

	cmd := &CheckCommand{format: "xml"}
	err := cmd.render(&buffer, sampleReport())

	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorContains(t, err, "xml")
}

func TestListCommand_RendersBothCatalogs(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer

	cmd := &ListCommand{noColor: true}
	require.NoError(t, cmd.Run(&buffer))

	output := buffer.String()

	assert.Contains(t, output, "Patterns")
	assert.Contains(t, output, "Metrics")
	assert.Contains(t, output, "P20_5")
	assert.Contains(t, output, "M11")

	// P9 ships excluded by default.
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "P9 ") {
			assert.Contains(t, line, "off")
		}
	}
}
