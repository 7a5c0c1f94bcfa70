package schema

// Record types recognized in the schema template
const (
	TypeDatabase = "database"
	TypeTable    = "table"
	TypeColumn   = "column"
)

// Record is a single row of the schema template
type Record struct {
	Type          string `db:"type"`
	DatabaseName  string `db:"database_name"`
	TableName     string `db:"table_name"`
	ColumnName    string `db:"column_name"`
	ColumnType    string `db:"column_type"`
	ColumnComment string `db:"column_comment"`
}

// Fields returns the template header names
func (*Record) Fields() []string {
	return []string{"type", "database_name", "table_name", "column_name", "column_type", "column_comment"}
}

// TableKey identifies a table within a database
type TableKey struct {
	Database string
	Table    string
}

func (k TableKey) String() string {
	return k.Database + "." + k.Table
}

// Column is a column descriptor attached to a table
type Column struct {
	Name    string
	Type    string
	Comment string
}
