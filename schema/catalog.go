package schema

// Catalog is the classified, read-only schema model.
//
// Databases keep first-seen order. Table owners (the databases that have
// table rows) keep the first-seen order of their first table row, which
// may differ from the database order and may include databases without
// a database row of their own.
type Catalog struct {
	databases []string
	owners    []string
	tables    map[string][]string
	columns   map[TableKey][]Column
}

// Databases returns unique database names in first-seen order
func (c *Catalog) Databases() []string {
	return append([]string{}, c.databases...)
}

// Owners returns the databases owning tables, in first-seen order
func (c *Catalog) Owners() []string {
	return append([]string{}, c.owners...)
}

// Tables returns unique table names of a database in first-seen order
func (c *Catalog) Tables(database string) []string {
	return append([]string{}, c.tables[database]...)
}

// Columns returns the columns of a table in input order, duplicates included
func (c *Catalog) Columns(key TableKey) []Column {
	return append([]Column{}, c.columns[key]...)
}

// TableKeys lists every table, grouped by owner
func (c *Catalog) TableKeys() []TableKey {
	result := []TableKey{}
	for _, database := range c.owners {
		for _, table := range c.tables[database] {
			result = append(result, TableKey{database, table})
		}
	}
	return result
}

// First returns the first database, if any
func (c *Catalog) First() (string, bool) {
	if len(c.databases) == 0 {
		return "", false
	}
	return c.databases[0], true
}
