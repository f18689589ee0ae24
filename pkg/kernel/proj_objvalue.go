package kernel

import (
	"fmt"
	"strings"
)

// Site is one of the three job boards postings are published on
type Site string

const (
	SiteSaramin  Site = "SARAMIN"
	SiteJobKorea Site = "JOBKOREA"
	SiteIncruit  Site = "INCRUIT"
)

// Sites lists every site in display order
var Sites = []Site{SiteSaramin, SiteJobKorea, SiteIncruit}

var siteLabels = map[Site]string{
	SiteSaramin:  "사람인",
	SiteJobKorea: "잡코리아",
	SiteIncruit:  "인크루트",
}

// Label returns the Korean display name
func (s Site) Label() string {
	if l, ok := siteLabels[s]; ok {
		return l
	}
	return string(s)
}

// Order returns the display position of the site, or len(Sites) if unknown
func (s Site) Order() int {
	for i, v := range Sites {
		if v == s {
			return i
		}
	}
	return len(Sites)
}

func (s Site) IsValid() bool { return s.Order() < len(Sites) }

// ParseSite accepts either the identifier or the Korean label
func ParseSite(v string) (Site, error) {
	v = strings.TrimSpace(v)
	for _, s := range Sites {
		if strings.EqualFold(v, string(s)) || v == siteLabels[s] {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown site %q", v)
}

// Position is the kind of role a posting recruits for
type Position string

const (
	PositionSales      Position = "SALES"
	PositionInstructor Position = "INSTRUCTOR"
)

// Positions lists every position in display order
var Positions = []Position{PositionSales, PositionInstructor}

var positionLabels = map[Position]string{
	PositionSales:      "영업",
	PositionInstructor: "강사",
}

func (p Position) Label() string {
	if l, ok := positionLabels[p]; ok {
		return l
	}
	return string(p)
}

func (p Position) Order() int {
	for i, v := range Positions {
		if v == p {
			return i
		}
	}
	return len(Positions)
}

func (p Position) IsValid() bool { return p.Order() < len(Positions) }

// ParsePosition accepts either the identifier or the Korean label
func ParsePosition(v string) (Position, error) {
	v = strings.TrimSpace(v)
	for _, p := range Positions {
		if strings.EqualFold(v, string(p)) || v == positionLabels[p] {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown position %q", v)
}

type PostingTitle string

type CompanyName string

type Memo string

type PersonName string

type ContactInfo string

type Email string

type DisplayName string

// ============================================================================
// Selections
// ============================================================================

// ContainsSite reports whether s is in sites
func ContainsSite(sites []Site, s Site) bool {
	for _, v := range sites {
		if v == s {
			return true
		}
	}
	return false
}

// ContainsPosition reports whether p is in positions
func ContainsPosition(positions []Position, p Position) bool {
	for _, v := range positions {
		if v == p {
			return true
		}
	}
	return false
}

// DistinctSites returns the known sites of the selection once each, in
// display order
func DistinctSites(sites []Site) []Site {
	out := make([]Site, 0, len(Sites))
	for _, s := range Sites {
		if ContainsSite(sites, s) {
			out = append(out, s)
		}
	}
	return out
}

// DistinctPositions returns the known positions of the selection once each,
// in display order
func DistinctPositions(positions []Position) []Position {
	out := make([]Position, 0, len(Positions))
	for _, p := range Positions {
		if ContainsPosition(positions, p) {
			out = append(out, p)
		}
	}
	return out
}
