package store

// generated with gopkg.in/reform.v1

import (
	"fmt"
	"strings"

	"gopkg.in/reform.v1"
	"gopkg.in/reform.v1/parse"
)

type invoiceOrderTableType struct {
	s parse.StructInfo
	z []interface{}
}

// Schema returns a schema name in SQL database ("").
func (v *invoiceOrderTableType) Schema() string {
	return v.s.SQLSchema
}

// Name returns a view or table name in SQL database ("invoice_orders").
func (v *invoiceOrderTableType) Name() string {
	return v.s.SQLName
}

// Columns returns a new slice of column names for that view or table in SQL database.
func (v *invoiceOrderTableType) Columns() []string {
	return []string{"invoice_id", "order_guid", "created_at", "updated_at"}
}

// NewStruct makes a new struct for that view or table.
func (v *invoiceOrderTableType) NewStruct() reform.Struct {
	return new(InvoiceOrder)
}

// NewRecord makes a new record for that table.
func (v *invoiceOrderTableType) NewRecord() reform.Record {
	return new(InvoiceOrder)
}

// PKColumnIndex returns an index of primary key column for that table in SQL database.
func (v *invoiceOrderTableType) PKColumnIndex() uint {
	return uint(v.s.PKFieldIndex)
}

// InvoiceOrderTable represents invoice_orders view or table in SQL database.
var InvoiceOrderTable = &invoiceOrderTableType{
	s: parse.StructInfo{
		Type:    "InvoiceOrder",
		SQLName: "invoice_orders",
		Fields: []parse.FieldInfo{
			{Name: "InvoiceID", Type: "string", Column: "invoice_id"},
			{Name: "OrderGUID", Type: "string", Column: "order_guid"},
			{Name: "CreatedAt", Type: "time.Time", Column: "created_at"},
			{Name: "UpdatedAt", Type: "time.Time", Column: "updated_at"},
		},
		PKFieldIndex: 0,
	},
	z: new(InvoiceOrder).Values(),
}

// String returns a string representation of this struct or record.
func (s InvoiceOrder) String() string {
	res := make([]string, 4)
	res[0] = "InvoiceID: " + reform.Inspect(s.InvoiceID, true)
	res[1] = "OrderGUID: " + reform.Inspect(s.OrderGUID, true)
	res[2] = "CreatedAt: " + reform.Inspect(s.CreatedAt, true)
	res[3] = "UpdatedAt: " + reform.Inspect(s.UpdatedAt, true)
	return strings.Join(res, ", ")
}

// Values returns a slice of struct or record field values.
// Returned interface{} values are never untyped nils.
func (s *InvoiceOrder) Values() []interface{} {
	return []interface{}{
		s.InvoiceID,
		s.OrderGUID,
		s.CreatedAt,
		s.UpdatedAt,
	}
}

// Pointers returns a slice of pointers to struct or record fields.
// Returned interface{} values are never untyped nils.
func (s *InvoiceOrder) Pointers() []interface{} {
	return []interface{}{
		&s.InvoiceID,
		&s.OrderGUID,
		&s.CreatedAt,
		&s.UpdatedAt,
	}
}

// View returns View object for that struct.
func (s *InvoiceOrder) View() reform.View {
	return InvoiceOrderTable
}

// Table returns Table object for that record.
func (s *InvoiceOrder) Table() reform.Table {
	return InvoiceOrderTable
}

// PKValue returns a value of primary key for that record.
// Returned interface{} value is never untyped nil.
func (s *InvoiceOrder) PKValue() interface{} {
	return s.InvoiceID
}

// PKPointer returns a pointer to primary key field for that record.
// Returned interface{} value is never untyped nil.
func (s *InvoiceOrder) PKPointer() interface{} {
	return &s.InvoiceID
}

// HasPK returns true if record has non-zero primary key set, false otherwise.
func (s *InvoiceOrder) HasPK() bool {
	return s.InvoiceID != InvoiceOrderTable.z[InvoiceOrderTable.s.PKFieldIndex]
}

// SetPK sets record primary key.
func (s *InvoiceOrder) SetPK(pk interface{}) {
	if str, ok := pk.(string); ok {
		s.InvoiceID = str
	}
}

// check interfaces
var (
	_ reform.View   = InvoiceOrderTable
	_ reform.Struct = new(InvoiceOrder)
	_ reform.Table  = InvoiceOrderTable
	_ reform.Record = new(InvoiceOrder)
	_ fmt.Stringer  = new(InvoiceOrder)
)

func init() {
	parse.AssertUpToDate(&InvoiceOrderTable.s, new(InvoiceOrder))
}
