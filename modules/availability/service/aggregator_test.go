package service

import (
	"testing"

	"gridmeet/modules/availability/entity"

	"github.com/stretchr/testify/require"
)

func respondent(name string, marks ...bool) entity.Response {
	return entity.Response{DisplayName: name, Slots: entity.Vector(marks)}
}

func TestAggregator_Counts(t *testing.T) {
	agg := NewAggregator(3, []entity.Response{
		respondent("A", true, false, true),
		respondent("B", true, true, false),
	})

	cell := agg.CellAt(0)
	require.Equal(t, 2, cell.AvailableCount)
	require.Equal(t, 1.0, cell.Intensity)
	require.Equal(t, []string{"A", "B"}, cell.AvailableNames)
	require.Empty(t, cell.UnavailableNames)

	cell = agg.CellAt(2)
	require.Equal(t, 1, cell.AvailableCount)
	require.Equal(t, 0.5, cell.Intensity)
	require.Equal(t, []string{"A"}, cell.AvailableNames)
	require.Equal(t, []string{"B"}, cell.UnavailableNames)
}

func TestAggregator_NoRespondents(t *testing.T) {
	agg := NewAggregator(4, nil)

	cell := agg.CellAt(0)
	require.Equal(t, 0, cell.AvailableCount)
	require.Equal(t, 0.0, cell.Intensity)
	require.Empty(t, cell.AvailableNames)
}

func TestAggregator_StaleShortVectorReadsUnavailable(t *testing.T) {
	// B's snapshot predates a range change and is shorter than the grid.
	agg := NewAggregator(4, []entity.Response{
		respondent("A", true, true, true, true),
		respondent("B", true, true),
	})

	cell := agg.CellAt(3)
	require.Equal(t, 1, cell.AvailableCount)
	require.Equal(t, 0.5, cell.Intensity)
	require.Equal(t, []string{"A"}, cell.AvailableNames)
	require.Equal(t, []string{"B"}, cell.UnavailableNames)
}

func TestAggregator_NamesPreserveArrivalOrder(t *testing.T) {
	agg := NewAggregator(1, []entity.Response{
		respondent("Zoe", true),
		respondent("Ada", true),
		respondent("Mel", true),
	})

	cell := agg.CellAt(0)
	require.Equal(t, []string{"Zoe", "Ada", "Mel"}, cell.AvailableNames)
}

func TestAggregator_IncludeLocalAppendsNewRespondent(t *testing.T) {
	agg := NewAggregator(2, []entity.Response{
		respondent("A", true, false),
	})
	agg.IncludeLocal("Me", entity.Vector{false, true})

	require.Equal(t, 2, agg.TotalRespondents())

	cell := agg.CellAt(1)
	require.Equal(t, []string{"Me"}, cell.AvailableNames)
	require.Equal(t, 0.5, cell.Intensity)
}

func TestAggregator_IncludeLocalReplacesSavedSelf(t *testing.T) {
	agg := NewAggregator(2, []entity.Response{
		respondent("A", true, false),
		respondent("me", false, false),
	})

	// The live buffer wins over the saved snapshot, without double counting.
	agg.IncludeLocal("Me", entity.Vector{true, true})

	require.Equal(t, 2, agg.TotalRespondents())

	cell := agg.CellAt(1)
	require.Equal(t, 1, cell.AvailableCount)
	require.Equal(t, []string{"me"}, cell.AvailableNames)
}

func TestAggregator_Cells(t *testing.T) {
	agg := NewAggregator(3, []entity.Response{
		respondent("A", true, false, true),
	})

	cells := agg.Cells()
	require.Len(t, cells, 3)
	require.Equal(t, 0, cells[0].Index)
	require.Equal(t, 2, cells[2].Index)
	require.Equal(t, 1, cells[0].AvailableCount)
	require.Equal(t, 0, cells[1].AvailableCount)
}
