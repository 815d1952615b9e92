package processor

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-healthwatch/fixtures"
	"go-healthwatch/types"
)

func ids(reports []types.Report) []string {
	out := make([]string, len(reports))
	for i, r := range reports {
		out[i] = r.ID
	}
	return out
}

func TestFilterReports(t *testing.T) {
	reports := fixtures.CommunityReports()

	tests := []struct {
		name   string
		region string
		status string
		want   []string
	}{
		{"all all", "all", "all", ids(reports)},
		{"empty filters", "", "", ids(reports)},
		{"region only", "Assam", "all", []string{"RPT-NE-001"}},
		{"status only", "all", "Pending", []string{"RPT-NE-003", "RPT-NE-006"}},
		{"both", "Tripura", "Pending", []string{"RPT-NE-003"}},
		{"no match", "Meghalaya", "Pending", []string{}},
		{"case sensitive region", "assam", "all", []string{}},
		{"substring region", "Pradesh", "all", []string{"RPT-NE-004"}},
		{"unknown status fails closed", "all", "Archived", ids(reports)},
		{"sentinel is case insensitive", "ALL", "All", ids(reports)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterReports(reports, tt.region, tt.status)
			require.NotNil(t, got)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("FilterReports mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterReportsIsOrderedSubset(t *testing.T) {
	reports := fixtures.CommunityReports()
	opts := ReportOptions(reports)

	for _, region := range opts.Regions {
		for _, status := range opts.Statuses {
			got := FilterReports(reports, region, status)
			j := 0
			for _, r := range got {
				for j < len(reports) && reports[j].ID != r.ID {
					j++
				}
				require.Less(t, j, len(reports), "%s/%s: %s out of order or not in fixture", region, status, r.ID)
				j++
			}
		}
	}
}

func TestFilterReportsDoesNotMutate(t *testing.T) {
	reports := fixtures.CommunityReports()
	got := FilterReports(reports, "all", "all")
	got[0].Symptoms[0] = "changed"
	assert.Equal(t, "High Fever", reports[0].Symptoms[0])
}

func TestFindReport(t *testing.T) {
	reports := fixtures.CommunityReports()

	r, err := FindReport(reports, "RPT-NE-002")
	require.NoError(t, err)
	assert.Equal(t, "Shillong, Meghalaya", r.Location)

	_, err = FindReport(reports, "RPT-XX-999")
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestReportOptions(t *testing.T) {
	opts := ReportOptions(fixtures.CommunityReports())
	assert.Equal(t, []string{"all", "Arunachal Pradesh", "Assam", "Meghalaya", "Mizoram", "Nagaland", "Tripura"}, opts.Regions)
	assert.Equal(t, []string{"all", "Submitted", "Reviewed", "Pending"}, opts.Statuses)
}

func TestWriteReportsCSVFullFixture(t *testing.T) {
	reports := fixtures.CommunityReports()

	var buf bytes.Buffer
	require.NoError(t, WriteReportsCSV(&buf, reports))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+len(reports))
	assert.Equal(t, reportsCSVHeader, rows[0])

	for i, r := range reports {
		row := rows[i+1]
		require.Len(t, row, len(reportsCSVHeader))
		assert.Equal(t, r.ID, row[0])
		assert.Equal(t, r.Location, row[1])
		assert.Equal(t, r.Date, row[2])
		assert.Equal(t, string(r.Status), row[3])
		assert.Equal(t, r.SubmittedBy, row[4])
		assert.Equal(t, strconv.Itoa(r.Age), row[5])
		assert.Equal(t, string(r.Gender), row[6])
		assert.Equal(t, strings.Join(r.Symptoms, "; "), row[7])
		assert.Equal(t, r.Details, row[8])
	}
}

func TestWriteReportsCSVEscaping(t *testing.T) {
	r := types.Report{
		ID:          "RPT,1",
		Location:    `Village "North", Assam`,
		Date:        "2023-08-21",
		Status:      types.StatusPending,
		SubmittedBy: `CHW "Lead"`,
		Age:         40,
		Gender:      types.Other,
		Symptoms:    []string{"Fever, high", `"Cough"`},
		Details:     "Line one\nLine \"two\", with comma",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReportsCSV(&buf, []types.Report{r}))

	out := buf.String()
	assert.Contains(t, out, `"Village ""North"", Assam"`)
	assert.Contains(t, out, `"RPT,1"`)
	assert.Contains(t, out, `"Fever, high; ""Cough"""`)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	row := rows[1]
	require.Len(t, row, 9)
	assert.Equal(t, r.ID, row[0])
	assert.Equal(t, r.Location, row[1])
	assert.Equal(t, r.SubmittedBy, row[4])
	assert.Equal(t, `Fever, high; "Cough"`, row[7])
	assert.Equal(t, r.Details, row[8])
}

func TestWriteReportsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReportsCSV(&buf, []types.Report{}))
	assert.Equal(t, strings.Join(reportsCSVHeader, ","), buf.String())
}
