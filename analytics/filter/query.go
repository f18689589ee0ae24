package filter

import (
	"strings"

	"github.com/Abraxas-365/recruitboard/analytics/daterange"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
)

// ParseQuery reads a Spec from query parameters:
//
//	sites=SARAMIN,잡코리아  positions=SALES  status=HIRED  period=month
//	start=2024-05-01  end=2024-05-31  q=name  posting_id=...
//
// An absent sites or positions key selects every value; a present but empty
// one selects none.
func ParseQuery(q map[string]string) (Spec, error) {
	spec := Spec{
		Status:    q["status"],
		Period:    daterange.Period(q["period"]),
		Start:     kernel.Date(strings.TrimSpace(q["start"])),
		End:       kernel.Date(strings.TrimSpace(q["end"])),
		NameQuery: q["q"],
		PostingID: kernel.PostingID(strings.TrimSpace(q["posting_id"])),
	}

	if raw, ok := q["sites"]; ok {
		spec.Sites = []kernel.Site{}
		for _, v := range splitList(raw) {
			site, err := kernel.ParseSite(v)
			if err != nil {
				return Spec{}, ErrRegistry.New(CodeInvalidSite).WithDetail("site", v)
			}
			spec.Sites = append(spec.Sites, site)
		}
	}
	if raw, ok := q["positions"]; ok {
		spec.Positions = []kernel.Position{}
		for _, v := range splitList(raw) {
			pos, err := kernel.ParsePosition(v)
			if err != nil {
				return Spec{}, ErrRegistry.New(CodeInvalidPosition).WithDetail("position", v)
			}
			spec.Positions = append(spec.Positions, pos)
		}
	}
	return spec, nil
}

// QueryKeys are the parameters ParseQuery reads
var QueryKeys = []string{"sites", "positions", "status", "period", "start", "end", "q", "posting_id"}

// HasFilterKeys reports whether q carries any filter parameter
func HasFilterKeys(q map[string]string) bool {
	for _, k := range QueryKeys {
		if _, ok := q[k]; ok {
			return true
		}
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
