package blocks

import (
	"encoding/json"

	"github.com/kaicoh/go-blockkit/pkg/validation"
)

// Table is a table layout block.
type Table struct {
	Type           string          `json:"type"`
	Rows           []TableRow      `json:"rows"`
	ColumnSettings []ColumnSetting `json:"column_settings,omitempty"`
	BlockID        *string         `json:"block_id,omitempty"`
}

func (b *Table) block() {}

// TableRow is a single table row. It serializes transparently as the bare
// array of its cells.
type TableRow struct {
	Cells []TableCell
}

// MarshalJSON writes the row as the array of its cells.
func (r TableRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Cells)
}

// ColumnAlign names the horizontal alignment of a table column.
type ColumnAlign string

// Column alignments.
const (
	AlignLeft   ColumnAlign = "left"
	AlignCenter ColumnAlign = "center"
	AlignRight  ColumnAlign = "right"
)

// ColumnSetting configures the rendering of a single table column.
type ColumnSetting struct {
	Align     *ColumnAlign `json:"align,omitempty"`
	IsWrapped *bool        `json:"is_wrapped,omitempty"`
}

// TableRowBuilder builds a TableRow.
type TableRowBuilder struct {
	cells *[]TableCell
}

// NewTableRowBuilder constructs a TableRowBuilder.
func NewTableRowBuilder() *TableRowBuilder {
	return &TableRowBuilder{}
}

// Cell appends a cell to the row.
func (b *TableRowBuilder) Cell(cell TableCell) *TableRowBuilder {
	b.cells = validation.PushItem(b.cells, cell)
	return b
}

func (b *TableRowBuilder) SetCells(cells *[]TableCell) *TableRowBuilder {
	b.cells = cells
	return b
}

func (b *TableRowBuilder) GetCells() *[]TableCell {
	return b.cells
}

// Build validates the accumulated cells and returns the row.
func (b *TableRowBuilder) Build() (*TableRow, error) {
	cells := validation.Pipe(
		validation.NewValue(b.cells),
		validation.Require[[]TableCell](),
		validation.MaxItems[TableCell](20),
	)

	errs := validation.NewErrors("TableRow")
	errs.AddField("cells", cells.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	row := &TableRow{}
	if inner := cells.Inner(); inner != nil {
		row.Cells = *inner
	}
	return row, nil
}

// TableBuilder builds a Table block.
type TableBuilder struct {
	rows           *[]TableRow
	columnSettings *[]ColumnSetting
	blockID        validation.Value[string]
}

// NewTableBuilder constructs a TableBuilder.
func NewTableBuilder() *TableBuilder {
	return &TableBuilder{blockID: newBlockIDCell(nil)}
}

// Row appends a row.
func (b *TableBuilder) Row(row TableRow) *TableBuilder {
	b.rows = validation.PushItem(b.rows, row)
	return b
}

func (b *TableBuilder) SetRows(rows *[]TableRow) *TableBuilder {
	b.rows = rows
	return b
}

// ColumnSetting appends a column setting.
func (b *TableBuilder) ColumnSetting(setting ColumnSetting) *TableBuilder {
	b.columnSettings = validation.PushItem(b.columnSettings, setting)
	return b
}

func (b *TableBuilder) SetColumnSettings(settings *[]ColumnSetting) *TableBuilder {
	b.columnSettings = settings
	return b
}

func (b *TableBuilder) BlockID(id string) *TableBuilder {
	return b.SetBlockID(&id)
}

func (b *TableBuilder) SetBlockID(id *string) *TableBuilder {
	b.blockID = newBlockIDCell(id)
	return b
}

func (b *TableBuilder) GetRows() *[]TableRow {
	return b.rows
}

func (b *TableBuilder) GetColumnSettings() *[]ColumnSetting {
	return b.columnSettings
}

func (b *TableBuilder) GetBlockID() *string {
	return b.blockID.Inner()
}

// Build validates the accumulated fields and returns the block.
func (b *TableBuilder) Build() (*Table, error) {
	rows := validation.Pipe(
		validation.NewValue(b.rows),
		validation.Require[[]TableRow](),
		validation.MaxItems[TableRow](100),
	)
	settings := validation.Pipe(
		validation.NewValue(b.columnSettings),
		validation.MaxItems[ColumnSetting](20),
	)

	errs := validation.NewErrors("Table")
	errs.AddField("rows", rows.Errors())
	errs.AddField("column_settings", settings.Errors())
	errs.AddField("block_id", b.blockID.Errors())
	if !errs.Empty() {
		return nil, errs
	}

	block := &Table{Type: "table", BlockID: b.blockID.Inner()}
	if inner := rows.Inner(); inner != nil {
		block.Rows = *inner
	}
	if inner := settings.Inner(); inner != nil {
		block.ColumnSettings = *inner
	}
	return block, nil
}
