package tableview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructColumns(t *testing.T) {
	type Address struct {
		City string `col:"City"`
	}
	type Employee struct {
		FirstName string
		Age       uint32 `col:"Age"`
		Secret    string `col:"-"`
		Manager   *string
		Address
		internal int
	}
	boss := "Eve"
	rows := []Employee{
		{FirstName: "Ann", Age: 30, Secret: "x", Manager: &boss, Address: Address{City: "Vienna"}},
		{FirstName: "Bo", Age: 40},
	}

	columns := StructColumns[Employee](&DefaultStructFieldNaming)
	require.Equal(t, []string{"First Name", "Age", "Manager", "City"}, ColumnNames(columns))

	table := NewTable(columns, Refs(rows))
	require.Equal(t, [][]string{
		{"First Name", "Age", "Manager", "City"},
		{"Ann", "30", "Eve", "Vienna"},
		{"Bo", "40", "", ""},
	}, ViewStrings(table, true))

	for _, col := range columns {
		require.Equal(t, col.Value(&rows[0]), col.SortKey(&rows[0]))
	}
}

func TestStructColumns_EmbeddedPointer(t *testing.T) {
	type Contact struct {
		Email string
		Phone string
	}
	type Customer struct {
		Name string
		*Contact
	}
	rows := []Customer{
		{Name: "Ann", Contact: &Contact{Email: "ann@example.com", Phone: "123"}},
		{Name: "Bo"},
	}

	columns := StructColumns[Customer](&DefaultStructFieldNaming)
	require.Equal(t, []string{"Name", "Email", "Phone"}, ColumnNames(columns))
	require.Equal(t, [][]string{
		{"Ann", "ann@example.com", "123"},
		{"Bo", "", ""},
	}, ViewStrings(NewTable(columns, Refs(rows)), false))
}

func TestStructColumns_NilNaming(t *testing.T) {
	type Row struct {
		A int
		B string `col:"-"`
	}
	columns := StructColumns[Row](nil)
	require.Equal(t, []string{"A", "B"}, ColumnNames(columns))
}

func TestStructColumns_NotStruct(t *testing.T) {
	require.Panics(t, func() { StructColumns[int](nil) })
}
