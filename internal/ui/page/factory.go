package page

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/gridpop/internal/action"
	"github.com/atomicstack/gridpop/internal/format/table"
	"github.com/atomicstack/gridpop/internal/ui/component"
	"github.com/atomicstack/gridpop/internal/ui/state"
)

// Loader returns the current matrix.
type Loader interface {
	Load(ctx context.Context) ([][]string, error)
}

// Factory builds a fresh page for every switch, so no component state
// survives a page change.
type Factory struct {
	Sender    action.Sender
	Loader    Loader
	Persister component.Persister
}

// Build constructs the page identified by id.
func (f Factory) Build(ctx context.Context, id action.PageID) (Page, error) {
	switch id {
	case action.PageHome:
		rows, err := f.load(ctx)
		if err != nil {
			return nil, err
		}
		return NewHome(rows, f.Persister, f.Sender), nil
	case action.PageDetails:
		rows, err := f.load(ctx)
		if err != nil {
			return nil, err
		}
		return NewDetails(RowItems(rows), f.Sender), nil
	case action.PageCounter:
		return NewCounter(f.Sender), nil
	default:
		return nil, fmt.Errorf("unknown page %v", id)
	}
}

func (f Factory) load(ctx context.Context) ([][]string, error) {
	if f.Loader == nil {
		return nil, nil
	}
	rows, err := f.Loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load grid: %w", err)
	}
	return rows, nil
}

// RowItems summarises each matrix row as a table item. Labels are laid out
// in aligned columns: row number, cell count, then a preview of the cells.
func RowItems(rows [][]string) []state.Item {
	columns := make([][]string, len(rows))
	for i, row := range rows {
		columns[i] = []string{fmt.Sprintf("row %d", i+1), fmt.Sprintf("%d cells", len(row))}
		if len(row) > 0 {
			columns[i] = append(columns[i], strings.Join(row, ", "))
		}
	}
	labels := table.Format(columns, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft})
	items := make([]state.Item, len(rows))
	for i := range rows {
		items[i] = state.Item{ID: strconv.Itoa(i), Label: labels[i]}
	}
	return items
}
