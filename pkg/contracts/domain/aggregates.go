package domain

// YearlyAggregate holds the summed issuance volume and record count for one
// calendar year.
type YearlyAggregate struct {
	Year           int     `json:"year" csv:"Year"`
	AmountBillions float64 `json:"amount_billions" csv:"AmountBillions"`
	Count          int     `json:"count" csv:"Count"`
}

// BankPortfolio summarizes the matched green-finance issuance of a single
// bank. GreenPortfolio is in billions rounded to 1 decimal; AvgSize is
// total/count in billions rounded to 2 decimals, defined as 0 when the count
// is 0.
type BankPortfolio struct {
	GreenPortfolio float64 `json:"green_portfolio" csv:"green_portfolio"`
	BondCount      int     `json:"bond_count" csv:"bond_count"`
	AvgSize        float64 `json:"avg_size" csv:"avg_size"`
}

// TemporalPoint is one year of the fixed 2014-2024 evolution series. Volumes
// are total green finance in billions, i.e. bond-only sums inflated by the
// bond-to-total factor, rounded to 1 decimal.
type TemporalPoint struct {
	Year         int     `json:"year" csv:"Year"`
	GlobalVolume float64 `json:"global_volume" csv:"Global_Green_Finance"`
	ChinaVolume  float64 `json:"china_volume" csv:"China_Green_Finance"`
}

// RunSummary carries the headline statistics logged at the end of a pipeline
// run. It is informational console output, not part of the CSV contract.
type RunSummary struct {
	BondRecords     int     `json:"bond_records"`
	LoanRecords     int     `json:"loan_records"`
	FirstYear       int     `json:"first_year"`
	LastYear        int     `json:"last_year"`
	TotalBillions   float64 `json:"total_billions"`
	BanksIdentified int     `json:"banks_identified"`
}

// GrowthMetrics are the narrative growth figures derived from the temporal
// series. Percentages, rounded to 1 decimal; 0 when the base value is 0.
type GrowthMetrics struct {
	CAGRFull        float64 `json:"cagr_full"`
	CAGRFiveYear    float64 `json:"cagr_five_year"`
	ChinaShareFirst float64 `json:"china_share_first"`
	ChinaShareLast  float64 `json:"china_share_last"`
}
