package table_test

import (
	"bytes"
	"database/sql"
	"errors"
	"hotel/shared/table"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		input    table.Table
		expected string
	}{
		{
			name:     "empty result prints header and zero count",
			input:    table.New([]string{"hotelid", "hotelname"}),
			expected: "hotelid\thotelname\nTotal row(s): 0\n",
		},
		{
			name: "rows are tab separated",
			input: table.New([]string{"roomnumber", "price", "availability"},
				[]string{"101", "120", "Available"},
				[]string{"102", "150", "Booked"},
			),
			expected: "roomnumber\tprice\tavailability\n101\t120\tAvailable\n102\t150\tBooked\nTotal row(s): 2\n",
		},
		{
			name: "null cells print empty",
			input: table.Table{
				Columns: []string{"a", "b", "c"},
				Rows:    [][]sql.NullString{{table.Value("x"), table.Null, table.Value("z")}},
			},
			expected: "a\tb\tc\nx\t\tz\nTotal row(s): 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, table.Render(&buf, tt.input))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRender_WriteError(t *testing.T) {
	err := table.Render(failingWriter{}, table.New([]string{"a"}))

	assert.Error(t, err)
}

func TestTable_Accessors(t *testing.T) {
	tbl := table.New([]string{"last_value", "name"}, []string{"42", "Alice"})

	v, ok := tbl.Int()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, "42", tbl.String())
	assert.Equal(t, 1, tbl.ColumnIndex("name"))
	assert.Equal(t, -1, tbl.ColumnIndex("missing"))
	assert.Equal(t, table.Null, tbl.Cell(3, 0))

	_, ok = table.New([]string{"x"}).Int()
	assert.False(t, ok)

	_, ok = table.New([]string{"x"}, []string{"abc"}).Int()
	assert.False(t, ok)
}

func TestTable_FilterAndAppendColumn(t *testing.T) {
	tbl := table.New([]string{"id"}, []string{"1"}, []string{"2"}, []string{"3"})

	odd := tbl.Filter(func(row []sql.NullString) bool { return row[0].String != "2" })
	assert.Equal(t, 2, odd.Len())

	withFlag := odd.AppendColumn("flag", func(row []sql.NullString) sql.NullString {
		return table.Value("id-" + row[0].String)
	})

	assert.Equal(t, []string{"id", "flag"}, withFlag.Columns)
	assert.Equal(t, "id-3", withFlag.Cell(1, 1).String)
	assert.Equal(t, []string{"id"}, tbl.Columns)
}
