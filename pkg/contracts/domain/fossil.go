package domain

// FossilFinanceRow is one bank's reported fossil-fuel financing figure (2023,
// billions USD) from the auxiliary NZBA workbook.
type FossilFinanceRow struct {
	Bank          string  `json:"bank" csv:"Bank"`
	FossilFinance float64 `json:"fossil_finance_2023" csv:"Fossil_Finance_2023"`
}

// ParadoxSummary compares the fossil-fuel financing of NZBA member banks with
// their matched green portfolios.
type ParadoxSummary struct {
	TotalFossilBillions float64 `json:"total_fossil_billions"`
	TotalGreenBillions  float64 `json:"total_green_billions"`
	FossilToGreenRatio  float64 `json:"fossil_to_green_ratio"`
}
