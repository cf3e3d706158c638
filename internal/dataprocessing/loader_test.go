package dataprocessing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenfin/internal/config"
)

var testColumns = config.ColumnConfig{
	ISIN:    "ISIN",
	Issuer:  "IssuerCommonName",
	Country: "IssuerCountry",
	Date:    "IssueDate",
	Amount:  "FaceIssuedTotal",
}

// writeCSV writes a CSV fixture into dir and returns its path.
func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRecords(t *testing.T) {
	csv := "ISIN,IssuerCommonName,IssuerCountry,IssueDate,FaceIssuedTotal\n" +
		"XS0001,ICBC Green Bond,CN,2020-06-15,1000000000\n" +
		"XS0002,HSBC Green Bond,GB,2020-02-01,3000000000\n"
	path := writeCSV(t, t.TempDir(), "bonds.csv", csv)

	loader := NewLoader(nil, testColumns)
	records, err := loader.LoadRecords(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "XS0001", first.ISIN)
	assert.Equal(t, "ICBC Green Bond", first.IssuerName)
	assert.Equal(t, "CN", first.IssuerCountry)
	require.True(t, first.HasYear())
	assert.Equal(t, 2020, *first.Year)
	require.True(t, first.HasAmount())
	assert.Equal(t, 1e9, *first.Amount)
	assert.Equal(t, 1.0, *first.AmountBillions)
}

func TestLoadRecordsCoercesBadCellsToNull(t *testing.T) {
	csv := "ISIN,IssuerCommonName,IssuerCountry,IssueDate,FaceIssuedTotal\n" +
		"XS0003,Bad Date Issuer,DE,not-a-date,2000000000\n" +
		"XS0004,Bad Amount Issuer,FR,2021-01-01,n/a\n" +
		"XS0005,Both Bad,IT,,\n"
	path := writeCSV(t, t.TempDir(), "bonds.csv", csv)

	loader := NewLoader(nil, testColumns)
	records, err := loader.LoadRecords(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 3, "rows with unparsable cells must survive")

	assert.False(t, records[0].HasYear())
	require.True(t, records[0].HasAmount())
	assert.Equal(t, 2.0, *records[0].AmountBillions)

	require.True(t, records[1].HasYear())
	assert.Equal(t, 2021, *records[1].Year)
	assert.False(t, records[1].HasAmount())
	assert.Nil(t, records[1].AmountBillions, "billions must propagate null")

	assert.False(t, records[2].HasYear())
	assert.False(t, records[2].HasAmount())
}

func TestLoadRecordsRaggedRows(t *testing.T) {
	csv := "ISIN,IssuerCommonName,IssuerCountry,IssueDate,FaceIssuedTotal\n" +
		"XS0006,Short Row Issuer\n"
	path := writeCSV(t, t.TempDir(), "bonds.csv", csv)

	loader := NewLoader(nil, testColumns)
	records, err := loader.LoadRecords(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Short Row Issuer", records[0].IssuerName)
	assert.False(t, records[0].HasYear())
	assert.False(t, records[0].HasAmount())
}

func TestLoadRecordsMissingFileIsFatal(t *testing.T) {
	loader := NewLoader(nil, testColumns)
	_, err := loader.LoadRecords(context.Background(), filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestLoadRecordsMissingColumnIsFatal(t *testing.T) {
	csv := "ISIN,SomethingElse,IssuerCountry,IssueDate,FaceIssuedTotal\n" +
		"XS0007,whatever,US,2020-01-01,1\n"
	path := writeCSV(t, t.TempDir(), "bonds.csv", csv)

	loader := NewLoader(nil, testColumns)
	_, err := loader.LoadRecords(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IssuerCommonName")
}

func TestLoadRecordsHeaderCaseInsensitive(t *testing.T) {
	csv := "isin,issuercommonname,issuercountry,issuedate,faceissuedtotal\n" +
		"XS0008,Citi Green,US,2022-05-05,500000000\n"
	path := writeCSV(t, t.TempDir(), "bonds.csv", csv)

	loader := NewLoader(nil, testColumns)
	records, err := loader.LoadRecords(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0.5, *records[0].AmountBillions)
}
