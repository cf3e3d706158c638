package exporter

import (
	"sort"

	"greenfin/pkg/contracts/domain"
)

// bankPortfoliosFile and temporalEvolutionFile are the well-known result
// file names consumed by the report figures.
const (
	bankPortfoliosFile    = "bank_portfolios.csv"
	temporalEvolutionFile = "temporal_evolution.csv"
)

// WriteBankPortfolios writes the per-bank portfolio summary, one row per
// identified bank, sorted by bank name so reruns are byte-identical.
func (w *CSVWriter) WriteBankPortfolios(portfolios map[string]domain.BankPortfolio) error {
	banks := make([]string, 0, len(portfolios))
	for bank := range portfolios {
		banks = append(banks, bank)
	}
	sort.Strings(banks)

	records := make([][]string, 0, len(banks))
	for _, bank := range banks {
		p := portfolios[bank]
		records = append(records, []string{
			bank,
			formatFloat1(p.GreenPortfolio),
			formatInt(p.BondCount),
			formatFloat2(p.AvgSize),
		})
	}

	return w.WriteCSV(bankPortfoliosFile, WriteOptions{
		Headers: []string{"Bank", "green_portfolio", "bond_count", "avg_size"},
		Records: records,
	})
}

// WriteTemporalEvolution writes the fixed-range evolution series in year
// order.
func (w *CSVWriter) WriteTemporalEvolution(series []domain.TemporalPoint) error {
	records := make([][]string, 0, len(series))
	for _, point := range series {
		records = append(records, []string{
			formatInt(point.Year),
			formatFloat1(point.GlobalVolume),
			formatFloat1(point.ChinaVolume),
		})
	}

	return w.WriteCSV(temporalEvolutionFile, WriteOptions{
		Headers: []string{"Year", "Global_Green_Finance", "China_Green_Finance"},
		Records: records,
	})
}
