package report

import (
	"net/http"
	"strings"

	"github.com/Abraxas-365/recruitboard/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("REPORT")

var (
	CodeInvalidSection = ErrRegistry.Register("INVALID_SECTION", errx.TypeValidation, http.StatusBadRequest, "Unknown report section")
	CodeInvalidColumn  = ErrRegistry.Register("INVALID_COLUMN", errx.TypeValidation, http.StatusBadRequest, "Unknown report column")
)

// Section is one optional part of a report
type Section string

const (
	SectionFunnel           Section = "funnel"
	SectionROI              Section = "roi"
	SectionTrends           Section = "trends"
	SectionPositionAnalysis Section = "position_analysis"
	SectionDemographics     Section = "demographics"
	SectionRawData          Section = "raw_data"
)

// Sections lists every section in document order
var Sections = []Section{
	SectionFunnel,
	SectionROI,
	SectionTrends,
	SectionPositionAnalysis,
	SectionDemographics,
	SectionRawData,
}

// Column is one field of the raw applicant table
type Column string

const (
	ColumnName        Column = "name"
	ColumnJobTitle    Column = "job_title"
	ColumnSite        Column = "site"
	ColumnPosition    Column = "position"
	ColumnAppliedDate Column = "applied_date"
	ColumnStatus      Column = "status"
	ColumnGender      Column = "gender"
	ColumnAge         Column = "age"
	ColumnContactInfo Column = "contact_info"
	ColumnMemo        Column = "memo"
)

// Columns lists every raw data column in table order
var Columns = []Column{
	ColumnName,
	ColumnJobTitle,
	ColumnSite,
	ColumnPosition,
	ColumnAppliedDate,
	ColumnStatus,
	ColumnGender,
	ColumnAge,
	ColumnContactInfo,
	ColumnMemo,
}

var columnHeaders = map[Column]string{
	ColumnName:        "이름",
	ColumnJobTitle:    "지원 공고",
	ColumnSite:        "사이트",
	ColumnPosition:    "유형",
	ColumnAppliedDate: "지원일",
	ColumnStatus:      "상태",
	ColumnGender:      "성별",
	ColumnAge:         "나이",
	ColumnContactInfo: "연락처",
	ColumnMemo:        "메모",
}

// Header returns the Korean table header
func (c Column) Header() string {
	return columnHeaders[c]
}

// normalize folds camelCase and snake_case names together
func normalize(v string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(v), "_", ""))
}

// ParseSections resolves section names. No names selects every section.
func ParseSections(values []string) ([]Section, error) {
	if len(values) == 0 {
		return Sections, nil
	}
	out := make([]Section, 0, len(values))
	for _, v := range values {
		s, ok := lookup(Sections, v)
		if !ok {
			return nil, ErrRegistry.New(CodeInvalidSection).WithDetail("section", v)
		}
		out = append(out, s)
	}
	return out, nil
}

// ParseColumns resolves column names. No names selects every column.
func ParseColumns(values []string) ([]Column, error) {
	if len(values) == 0 {
		return Columns, nil
	}
	out := make([]Column, 0, len(values))
	for _, v := range values {
		c, ok := lookup(Columns, v)
		if !ok {
			return nil, ErrRegistry.New(CodeInvalidColumn).WithDetail("column", v)
		}
		out = append(out, c)
	}
	return out, nil
}

func lookup[T ~string](all []T, v string) (T, bool) {
	for _, item := range all {
		if normalize(string(item)) == normalize(v) {
			return item, true
		}
	}
	return "", false
}
