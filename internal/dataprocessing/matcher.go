package dataprocessing

import (
	"strings"

	"greenfin/pkg/contracts/domain"
)

// MatchesAny reports whether name contains any of the fragments,
// case-insensitively. It is the single attribution predicate used for both
// bank portfolios and the jurisdiction subset: substring containment with OR
// semantics across fragments. An empty or missing name never matches, and a
// name containing several fragments still matches exactly once (membership,
// not frequency).
func MatchesAny(name string, fragments []string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(fragment)) {
			return true
		}
	}
	return false
}

// IsChineseIssuer reports whether a record belongs to the jurisdiction
// subset: issuer country equals ChinaCountryCode, or the issuer name matches
// a known Chinese bank fragment. Best-effort name matching; partial matches
// count as true positives.
func IsChineseIssuer(rec domain.Record) bool {
	if rec.IssuerCountry == ChinaCountryCode {
		return true
	}
	return MatchesAny(rec.IssuerName, ChineseBankFragments)
}
