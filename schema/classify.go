package schema

// Builder classifies records into databases, tables and columns
// in a single forward pass.
type Builder struct {
	databases []string
	owners    []string
	tables    map[string][]string
	columns   map[TableKey][]Column

	seenDatabases map[string]bool
	seenTables    map[TableKey]bool
}

// NewBuilder creates a new *Builder
func NewBuilder() *Builder {
	return &Builder{
		databases:     make([]string, 0),
		owners:        make([]string, 0),
		tables:        make(map[string][]string),
		columns:       make(map[TableKey][]Column),
		seenDatabases: make(map[string]bool),
		seenTables:    make(map[TableKey]bool),
	}
}

// Add folds a record into the builder. Records with an unknown
// type are ignored; the return value reports if r was classified.
func (b *Builder) Add(r Record) bool {
	switch r.Type {
	case TypeDatabase:
		if !b.seenDatabases[r.DatabaseName] {
			b.seenDatabases[r.DatabaseName] = true
			b.databases = append(b.databases, r.DatabaseName)
		}
	case TypeTable:
		if _, ok := b.tables[r.DatabaseName]; !ok {
			b.owners = append(b.owners, r.DatabaseName)
			b.tables[r.DatabaseName] = []string{}
		}
		key := TableKey{r.DatabaseName, r.TableName}
		if !b.seenTables[key] {
			b.seenTables[key] = true
			b.tables[r.DatabaseName] = append(b.tables[r.DatabaseName], r.TableName)
		}
	case TypeColumn:
		key := TableKey{r.DatabaseName, r.TableName}
		b.columns[key] = append(b.columns[key], Column{
			Name:    r.ColumnName,
			Type:    r.ColumnType,
			Comment: r.ColumnComment,
		})
	default:
		return false
	}
	return true
}

// Catalog returns a snapshot of everything classified so far
func (b *Builder) Catalog() *Catalog {
	c := &Catalog{
		databases: append([]string{}, b.databases...),
		owners:    append([]string{}, b.owners...),
		tables:    make(map[string][]string, len(b.tables)),
		columns:   make(map[TableKey][]Column, len(b.columns)),
	}
	for k, v := range b.tables {
		c.tables[k] = append([]string{}, v...)
	}
	for k, v := range b.columns {
		c.columns[k] = append([]Column{}, v...)
	}
	return c
}

// Classify builds a *Catalog from records
func Classify(records []Record) *Catalog {
	b := NewBuilder()
	for _, r := range records {
		b.Add(r)
	}
	return b.Catalog()
}
