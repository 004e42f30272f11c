package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePDF(t *testing.T) {
	records := sampleRecords()

	data, err := GeneratePDF(records, ReportColumns)
	require.NoError(t, err)

	require.Greater(t, len(data), 1000)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestGeneratePDFEmpty(t *testing.T) {
	data, err := GeneratePDF(nil, ReportColumns)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestGenerateGroupedPDF(t *testing.T) {
	groups := GroupRecords(sampleRecords(), "status")

	data, err := GenerateGroupedPDF(groups, ReportColumns)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestGeneratePDFDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := records[0]

	_, err := GeneratePDF(records, ReportColumns)
	require.NoError(t, err)
	assert.Equal(t, before, records[0])
}
