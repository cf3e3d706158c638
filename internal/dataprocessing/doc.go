// Package dataprocessing turns raw green-finance exports into the aggregates
// behind the study's figures.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Loader: reads CSV exports and the auxiliary fossil-finance workbook,
// coercing date and amount cells to explicit nulls on parse failure
//
// 2. Matcher: pure name-fragment predicates used for bank and jurisdiction
// attribution
//
// 3. Analytics: per-year aggregation, bank portfolio summaries, the fixed
// 2014-2024 temporal series, and the narrative growth/paradox statistics
//
// The pipeline is a pure, single-pass transform: identical inputs always
// produce identical aggregates.
package dataprocessing
