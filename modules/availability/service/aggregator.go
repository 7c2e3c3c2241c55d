package service

import (
	"strings"

	"gridmeet/modules/availability/entity"
)

// Aggregator merges the fetched respondent vectors into per-slot heatmap
// cells. When the current user has already joined, their live local vector
// can be folded in so they see themselves available immediately, without
// waiting for the save round-trip.
type Aggregator struct {
	totalSlots  int
	respondents []entity.Response
}

// NewAggregator takes the respondent list in fetch order. Vectors are read
// through the out-of-range fallback, so stale snapshots from a previous range
// are safe at any index.
func NewAggregator(totalSlots int, respondents []entity.Response) *Aggregator {
	return &Aggregator{
		totalSlots:  totalSlots,
		respondents: respondents,
	}
}

// IncludeLocal folds the live local buffer into the respondent set. A
// respondent already saved under the same name (case-insensitive) is replaced
// in place, keeping their arrival position and leaving the denominator
// untouched; a not-yet-saved user is appended.
func (a *Aggregator) IncludeLocal(displayName string, vector entity.Vector) {
	for i, r := range a.respondents {
		if strings.EqualFold(r.DisplayName, displayName) {
			a.respondents[i].Slots = vector
			return
		}
	}
	a.respondents = append(a.respondents, entity.Response{
		DisplayName: displayName,
		Slots:       vector,
	})
}

// TotalRespondents is the intensity denominator: every fetched respondent,
// never a filtered subset.
func (a *Aggregator) TotalRespondents() int {
	return len(a.respondents)
}

// CellAt computes the aggregate for one slot index.
func (a *Aggregator) CellAt(index int) entity.AggregateCell {
	cell := entity.AggregateCell{
		Index:            index,
		TotalRespondents: len(a.respondents),
		AvailableNames:   []string{},
		UnavailableNames: []string{},
	}

	for _, r := range a.respondents {
		if r.Slots.At(index) {
			cell.AvailableCount++
			cell.AvailableNames = append(cell.AvailableNames, r.DisplayName)
		} else {
			cell.UnavailableNames = append(cell.UnavailableNames, r.DisplayName)
		}
	}

	if cell.TotalRespondents > 0 {
		cell.Intensity = float64(cell.AvailableCount) / float64(cell.TotalRespondents)
	}
	return cell
}

// Cells computes the whole grid.
func (a *Aggregator) Cells() []entity.AggregateCell {
	cells := make([]entity.AggregateCell, a.totalSlots)
	for i := 0; i < a.totalSlots; i++ {
		cells[i] = a.CellAt(i)
	}
	return cells
}
