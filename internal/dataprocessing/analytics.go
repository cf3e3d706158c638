package dataprocessing

import (
	"math"

	"greenfin/pkg/contracts/domain"
)

// AggregateByYear groups records by calendar year, summing the billions
// volume and counting rows. Rows with a null year carry no grouping key and
// are excluded; rows with a null amount still count but contribute 0 volume.
func AggregateByYear(records []domain.Record) map[int]domain.YearlyAggregate {
	yearly := make(map[int]domain.YearlyAggregate)
	for _, rec := range records {
		if !rec.HasYear() {
			continue
		}
		agg := yearly[*rec.Year]
		agg.Year = *rec.Year
		agg.AmountBillions += rec.Billions()
		agg.Count++
		yearly[*rec.Year] = agg
	}
	return yearly
}

// CalculateBankPortfolios attributes records to the canonical banks in
// BankNameFragments and summarizes each bank's matched issuance. Banks with
// zero matched rows are absent from the result, never present with zero
// values.
func CalculateBankPortfolios(records []domain.Record) map[string]domain.BankPortfolio {
	portfolios := make(map[string]domain.BankPortfolio)

	for bank, fragments := range BankNameFragments {
		var total float64
		var count int
		for _, rec := range records {
			if MatchesAny(rec.IssuerName, fragments) {
				total += rec.Billions()
				count++
			}
		}
		if count == 0 {
			continue
		}

		portfolios[bank] = domain.BankPortfolio{
			GreenPortfolio: round1(total),
			BondCount:      count,
			AvgSize:        round2(total / float64(count)),
		}
	}

	return portfolios
}

// BuildTemporalSeries derives the fixed 2014-2024 evolution of green finance
// volume: for each year, the global and jurisdiction-subset bond sums
// (0 when the year is absent from the data) inflated by BondToTotalFactor to
// approximate bonds plus loans, rounded to 1 decimal.
func BuildTemporalSeries(records []domain.Record) []domain.TemporalPoint {
	yearlyGlobal := AggregateByYear(records)

	var chinese []domain.Record
	for _, rec := range records {
		if IsChineseIssuer(rec) {
			chinese = append(chinese, rec)
		}
	}
	yearlyChina := AggregateByYear(chinese)

	series := make([]domain.TemporalPoint, 0, TemporalLastYear-TemporalFirstYear+1)
	for year := TemporalFirstYear; year <= TemporalLastYear; year++ {
		series = append(series, domain.TemporalPoint{
			Year:         year,
			GlobalVolume: round1(yearlyGlobal[year].AmountBillions / BondToTotalFactor),
			ChinaVolume:  round1(yearlyChina[year].AmountBillions / BondToTotalFactor),
		})
	}
	return series
}

// Summarize computes the headline statistics reported at the end of a run.
func Summarize(bonds, loans []domain.Record, portfolios map[string]domain.BankPortfolio) domain.RunSummary {
	summary := domain.RunSummary{
		BondRecords:     len(bonds),
		LoanRecords:     len(loans),
		BanksIdentified: len(portfolios),
	}

	for _, rec := range bonds {
		summary.TotalBillions += rec.Billions()
		if !rec.HasYear() {
			continue
		}
		if summary.FirstYear == 0 || *rec.Year < summary.FirstYear {
			summary.FirstYear = *rec.Year
		}
		if *rec.Year > summary.LastYear {
			summary.LastYear = *rec.Year
		}
	}
	summary.TotalBillions = round1(summary.TotalBillions)

	return summary
}

// CompareParadox totals the fossil-fuel financing of the banks in the
// auxiliary table against their matched green portfolios. Banks absent from
// the portfolio map contribute 0 green volume. The ratio is 0 when no green
// volume was matched.
func CompareParadox(fossil []domain.FossilFinanceRow, portfolios map[string]domain.BankPortfolio) domain.ParadoxSummary {
	var summary domain.ParadoxSummary
	for _, row := range fossil {
		summary.TotalFossilBillions += row.FossilFinance
		summary.TotalGreenBillions += portfolios[row.Bank].GreenPortfolio
	}
	if summary.TotalGreenBillions > 0 {
		summary.FossilToGreenRatio = round1(summary.TotalFossilBillions / summary.TotalGreenBillions)
	}
	summary.TotalFossilBillions = round1(summary.TotalFossilBillions)
	summary.TotalGreenBillions = round1(summary.TotalGreenBillions)
	return summary
}

// GrowthMetrics derives the narrative growth figures from the temporal
// series: compound annual growth over the full range and the last five
// years, and the jurisdiction's share of global volume at both endpoints.
// Metrics whose base value is 0 are reported as 0 rather than infinities.
func GrowthMetrics(series []domain.TemporalPoint) domain.GrowthMetrics {
	var m domain.GrowthMetrics
	if len(series) == 0 {
		return m
	}

	first := series[0]
	last := series[len(series)-1]

	if first.GlobalVolume > 0 && last.GlobalVolume > 0 {
		years := float64(last.Year - first.Year)
		if years > 0 {
			m.CAGRFull = round1((math.Pow(last.GlobalVolume/first.GlobalVolume, 1/years) - 1) * 100)
		}
	}
	if len(series) > 5 {
		base := series[len(series)-6]
		if base.GlobalVolume > 0 && last.GlobalVolume > 0 {
			m.CAGRFiveYear = round1((math.Pow(last.GlobalVolume/base.GlobalVolume, 1.0/5) - 1) * 100)
		}
	}
	if first.GlobalVolume > 0 {
		m.ChinaShareFirst = round1(first.ChinaVolume / first.GlobalVolume * 100)
	}
	if last.GlobalVolume > 0 {
		m.ChinaShareLast = round1(last.ChinaVolume / last.GlobalVolume * 100)
	}

	return m
}

// round1 rounds to 1 decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
