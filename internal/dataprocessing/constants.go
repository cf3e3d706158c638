package dataprocessing

import (
	"greenfin/pkg/contracts/domain"
)

// The values below are asserted domain assumptions carried over from the
// underlying study. They are configuration constants, never derived from the
// input data.

// BondToTotalFactor approximates total green finance (bonds + loans) from
// bond-only volume: bonds typically represent 70% of the total.
const BondToTotalFactor = 0.7

// TemporalFirstYear and TemporalLastYear bound the fixed evolution series.
// The series always has exactly LastYear-FirstYear+1 entries, whatever years
// the input actually covers.
const (
	TemporalFirstYear = 2014
	TemporalLastYear  = 2024
)

// ChinaCountryCode is the ISO country code that qualifies an issuer for the
// jurisdiction subset directly, without name matching.
const ChinaCountryCode = "CN"

// ChineseBankFragments are issuer-name fragments that identify Chinese bank
// issuers whose country field is missing or foreign (subsidiaries, branches).
// Matching is case-insensitive substring with OR semantics.
var ChineseBankFragments = []string{
	"ICBC",
	"China Construction",
	"Agricultural Bank",
	"Bank of China",
	"Industrial and Commercial Bank",
	"CCB",
	"ABC",
	"BOC",
}

// BankNameFragments maps each canonical bank to the name fragments that
// attribute an issuance to it. A row matching any fragment counts once for
// that bank; overlapping fragments are membership tests, not counters.
var BankNameFragments = map[string][]string{
	"ICBC":            {"ICBC", "Industrial and Commercial Bank"},
	"CCB":             {"China Construction", "CCB", "Construction Bank"},
	"ABC":             {"Agricultural Bank", "ABC"},
	"BOC":             {"Bank of China", "BOC"},
	"HSBC":            {"HSBC"},
	"BNP Paribas":     {"BNP Paribas", "BNPP"},
	"JPMorgan":        {"JPMorgan", "JP Morgan", "Chase"},
	"Bank of America": {"Bank of America", "BofA"},
	"Citigroup":       {"Citigroup", "Citi"},
	"Wells Fargo":     {"Wells Fargo"},
}

// DefaultFossilFinance is the built-in fallback used when the auxiliary NZBA
// workbook is missing or unreadable: the run proceeds with these published
// 2023 figures (billions USD) instead of failing.
var DefaultFossilFinance = []domain.FossilFinanceRow{
	{Bank: "JPMorgan", FossilFinance: 40.8},
	{Bank: "Bank of America", FossilFinance: 32.2},
	{Bank: "Citigroup", FossilFinance: 28.9},
	{Bank: "Wells Fargo", FossilFinance: 24.5},
	{Bank: "HSBC", FossilFinance: 22.6},
}
