// Package calc maintains the stock-in intake table: editable rows whose
// total is always qty*price and a grand total over the current row set.
package calc

import (
	"sync"

	"github.com/google/uuid"

	"smart-life-guard/internal/aggregate"
	"smart-life-guard/internal/model"
)

// Row is one intake line. ID is a generated token used for edit targeting;
// Index is display-only and recomputed from row order.
type Row struct {
	ID    string  `json:"id"`
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Code  string  `json:"code"`
	Qty   float64 `json:"qty"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
	Total float64 `json:"total"`
	Note  string  `json:"note,omitempty"`
}

type Table struct {
	mu   sync.Mutex
	rows []Row
}

func NewTable() *Table {
	return &Table{}
}

// AddRow appends an empty row with the next display index.
func (t *Table) AddRow() Row {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := 1
	if len(t.rows) > 0 {
		next = t.rows[len(t.rows)-1].Index + 1
	}

	row := Row{ID: uuid.NewString(), Index: next, Unit: "件"}
	t.rows = append(t.rows, row)
	return row
}

// UpdateRow patches the row with the given id. Editing qty or price
// recomputes that row's total only.
func (t *Table) UpdateRow(id string, patch model.IntakeRowPatch) (Row, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, row := range t.rows {
		if row.ID != id {
			continue
		}

		if patch.Name != nil {
			row.Name = *patch.Name
		}
		if patch.Code != nil {
			row.Code = *patch.Code
		}
		if patch.Unit != nil {
			row.Unit = *patch.Unit
		}
		if patch.Note != nil {
			row.Note = *patch.Note
		}
		if patch.Qty != nil || patch.Price != nil {
			if patch.Qty != nil {
				row.Qty = *patch.Qty
			}
			if patch.Price != nil {
				row.Price = *patch.Price
			}
			row.Total = aggregate.Round2(row.Qty * row.Price)
		}

		t.rows[i] = row
		return row, nil
	}

	return Row{}, model.ErrInvalidInput
}

// RemoveRow deletes a row by id. Other rows keep their identity and totals.
func (t *Table) RemoveRow(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, row := range t.rows {
		if row.ID != id {
			continue
		}
		t.rows = append(t.rows[:i], t.rows[i+1:]...)
		return true
	}
	return false
}

// Rows returns a snapshot copy in display order.
func (t *Table) Rows() []Row {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// GrandTotal sums every row's total, rounded for currency display.
func (t *Table) GrandTotal() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	var sum float64
	for _, row := range t.rows {
		sum += row.Total
	}
	return aggregate.Round2(sum)
}
