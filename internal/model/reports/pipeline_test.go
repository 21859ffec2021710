package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRows() []Row {
	return []Row{
		{Label: "Salary", Amount: 3000, Date: day(2024, time.March, 1), Owner: "alice@mail.com"},
		{Label: "bonus", Amount: 500, Date: day(2024, time.March, 15), Owner: "bob@mail.com"},
		{Label: "Freelance", Amount: 1200, Date: day(2024, time.February, 10), Owner: "alice@mail.com"},
	}
}

func Test_OnEmptyFilters_ShouldKeepEveryRow(t *testing.T) {
	rows := testRows()

	got := Filter(rows, "", Filters{})

	assert.Equal(t, rows, got)
}

func Test_OnSearch_ShouldMatchLabelAndOwnerCaseInsensitively(t *testing.T) {
	rows := testRows()

	byOwner := Filter(rows, "BOB", Filters{})
	byLabel := Filter(rows, "sal", Filters{})

	assert.Len(t, byOwner, 1)
	assert.Equal(t, "bonus", byOwner[0].Label)
	assert.Len(t, byLabel, 1)
	assert.Equal(t, "Salary", byLabel[0].Label)
}

func Test_OnAmountBounds_ShouldCombineWithAnd(t *testing.T) {
	rows := testRows()
	min, max := 600.0, 2000.0

	got := Filter(rows, "", Filters{MinAmount: &min, MaxAmount: &max})

	assert.Len(t, got, 1)
	assert.Equal(t, "Freelance", got[0].Label)
}

func Test_OnDateRange_ShouldCompareByCalendarDay(t *testing.T) {
	rows := []Row{
		{Label: "late evening", Amount: 10, Date: time.Date(2024, time.March, 1, 23, 50, 0, 0, time.UTC)},
	}
	start := day(2024, time.March, 1)
	end := day(2024, time.March, 1)

	got := Filter(rows, "", Filters{StartDate: &start, EndDate: &end})

	assert.Len(t, got, 1)
}

func Test_OnFilterTwice_ShouldReturnSameRows(t *testing.T) {
	rows := testRows()
	min := 400.0
	f := Filters{MinAmount: &min}

	once := Filter(rows, "alice", f)
	twice := Filter(once, "alice", f)

	assert.Equal(t, once, twice)
}

func Test_OnSortByAmountDesc_ShouldOrderNumerically(t *testing.T) {
	rows := testRows()

	got := Sort(rows, SortConfig{Key: SortByAmount, Direction: Desc})

	assert.Equal(t, []float64{3000, 1200, 500}, []float64{got[0].Amount, got[1].Amount, got[2].Amount})
}

func Test_OnSortByLabel_ShouldIgnoreCase(t *testing.T) {
	rows := testRows()

	got := Sort(rows, SortConfig{Key: SortByLabel, Direction: Asc})

	assert.Equal(t, "bonus", got[0].Label)
	assert.Equal(t, "Freelance", got[1].Label)
	assert.Equal(t, "Salary", got[2].Label)
}

func Test_OnSort_ShouldNotMutateInput(t *testing.T) {
	rows := testRows()

	_ = Sort(rows, SortConfig{Key: SortByAmount, Direction: Asc})

	assert.Equal(t, testRows(), rows)
}

func Test_OnDefaultSort_ShouldOpenNewestFirst(t *testing.T) {
	got := Sort(testRows(), DefaultSort())

	assert.Equal(t, "bonus", got[0].Label)
	assert.Equal(t, "Salary", got[1].Label)
	assert.Equal(t, "Freelance", got[2].Label)
}

func Test_OnToggleSameKey_ShouldFlipDirection(t *testing.T) {
	c := SortConfig{Key: SortByAmount, Direction: Asc}

	flipped := c.Toggle(SortByAmount)
	back := flipped.Toggle(SortByAmount)

	assert.Equal(t, SortConfig{Key: SortByAmount, Direction: Desc}, flipped)
	assert.Equal(t, SortConfig{Key: SortByAmount, Direction: Asc}, back)
}

func Test_OnToggleNewKey_ShouldStartAscending(t *testing.T) {
	c := SortConfig{Key: SortByDate, Direction: Desc}

	got := c.Toggle(SortByLabel)

	assert.Equal(t, SortConfig{Key: SortByLabel, Direction: Asc}, got)
}

func Test_OnAggregate_ShouldComputeTotalCountAverage(t *testing.T) {
	got := Aggregate(testRows())

	assert.Equal(t, 4700.0, got.Total)
	assert.Equal(t, 3, got.Count)
	assert.InDelta(t, 1566.67, got.Average, 0.01)
}

func Test_OnAggregateEmptySet_ShouldReturnZeroAverage(t *testing.T) {
	got := Aggregate(nil)

	assert.Equal(t, Stats{}, got)
}

func Test_OnAggregate_ShouldNotDependOnOrder(t *testing.T) {
	rows := testRows()

	plain := Aggregate(rows)
	sorted := Aggregate(Sort(rows, SortConfig{Key: SortByAmount, Direction: Desc}))

	assert.Equal(t, plain, sorted)
}

func Test_OnExportCSV_ShouldCoverWholeSet(t *testing.T) {
	csvText, err := ExportCSV("Source", testRows())

	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(csvText), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "Source,Amount,Date,User", lines[0])
	assert.Equal(t, "Salary,3000.00,01.03.2024,alice@mail.com", lines[1])
}

func Test_OnExportCSVWithZeroDate_ShouldRenderInvalidDate(t *testing.T) {
	csvText, err := ExportCSV("Category", []Row{{Label: "rent", Amount: 700, Owner: "N/A"}})

	assert.NoError(t, err)
	assert.Contains(t, csvText, "invalid date")
}

func Test_OnUnknownPeriod_ShouldReportNotSupported(t *testing.T) {
	_, ok := PeriodStart("decade")

	assert.False(t, ok)
}
