package processor

import (
	"errors"
	"sort"
	"strings"

	"github.com/samber/lo"

	"go-healthwatch/types"
)

// FilterAll is the sentinel filter value meaning "no restriction".
const FilterAll = "all"

var ErrReportNotFound = errors.New("report not found")

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, FilterAll)
}

// FilterReports returns the reports whose location contains region and whose
// status equals status, in their original order. Either filter set to "all"
// is a no-op, and an unrecognized status is treated as "all". The result is
// never nil and never aliases the input's symptom lists.
func FilterReports(reports []types.Report, region, status string) []types.Report {
	statusFilter := types.ReportStatus(status)
	if isAll(status) || !statusFilter.Valid() {
		statusFilter = ""
	}

	out := lo.FilterMap(reports, func(r types.Report, _ int) (types.Report, bool) {
		if !isAll(region) && !strings.Contains(r.Location, region) {
			return types.Report{}, false
		}
		if statusFilter != "" && r.Status != statusFilter {
			return types.Report{}, false
		}
		return r.Clone(), true
	})
	if out == nil {
		out = []types.Report{}
	}
	return out
}

// FindReport looks a report up by id.
func FindReport(reports []types.Report, id string) (types.Report, error) {
	r, ok := lo.Find(reports, func(r types.Report) bool { return r.ID == id })
	if !ok {
		return types.Report{}, ErrReportNotFound
	}
	return r.Clone(), nil
}

type ReportFilterOptions struct {
	Regions  []string `json:"regions"`
	Statuses []string `json:"statuses"`
}

// ReportOptions derives the enumerated filter choices from the reports: the
// region is the part of the location after the last comma.
func ReportOptions(reports []types.Report) ReportFilterOptions {
	regions := lo.Uniq(lo.Map(reports, func(r types.Report, _ int) string {
		loc := r.Location
		if i := strings.LastIndex(loc, ","); i >= 0 {
			loc = loc[i+1:]
		}
		return strings.TrimSpace(loc)
	}))
	sort.Strings(regions)

	statuses := lo.Map(types.ReportStatuses, func(s types.ReportStatus, _ int) string { return string(s) })

	return ReportFilterOptions{
		Regions:  append([]string{FilterAll}, regions...),
		Statuses: append([]string{FilterAll}, statuses...),
	}
}
