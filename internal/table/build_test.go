package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aeroxfer/internal/domain"
)

func TestBuild(t *testing.T) {
	b := &domain.Block{
		Label:        "Wing",
		HeaderTokens: []string{"alpha", "cx", "note"},
		Rows: [][]string{
			{"0.0", "1.5", "clean"},
			{"2.0", "bad", "iced"},
		},
	}
	tbl := Build(b)

	assert.Equal(t, "Wing", tbl.Label)
	assert.Equal(t, []string{ColAlpha, ColCx, "note"}, tbl.ColumnNames())
	assert.Equal(t, 2, tbl.NumRows())

	cx := tbl.Column(ColCx)
	require.NotNil(t, cx)
	assert.True(t, cx.Numeric)
	assert.True(t, cx.Valid[0])
	assert.Equal(t, 1.5, cx.Values[0])
	assert.False(t, cx.Valid[1], "unparseable cell becomes null, not an error")
	assert.Equal(t, "bad", cx.Text[1], "original string is preserved")

	note := tbl.Column("note")
	require.NotNil(t, note)
	assert.False(t, note.Numeric, "column with no numeric cell stays a string column")
	assert.Equal(t, []string{"clean", "iced"}, note.Text)
}

func TestBuild_NoRows(t *testing.T) {
	b := &domain.Block{Label: "Wing", HeaderTokens: []string{"alpha", "cx"}}
	tbl := Build(b)
	assert.Equal(t, 0, tbl.NumRows())
	assert.Len(t, tbl.Columns, 2)
}
