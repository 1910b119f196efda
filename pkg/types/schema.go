package types

// Schema describes the structure of an attached store.
type Schema struct {
	Version int           `json:"version" yaml:"version"`
	Tables  []TableSchema `json:"tables" yaml:"tables"`
	Indexes []string      `json:"indexes" yaml:"indexes"`
}

// TableSchema lists the columns of one table in declaration order and its
// CHECK expressions, sorted with whitespace collapsed.
type TableSchema struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []Column `json:"columns" yaml:"columns"`
	Checks  []string `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// Column mirrors one row of PRAGMA table_info.
type Column struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	NotNull    bool   `json:"not_null" yaml:"not_null"`
	Default    string `json:"default,omitempty" yaml:"default,omitempty"`
	PrimaryKey bool   `json:"primary_key" yaml:"primary_key"`
}

// Table returns the named table schema and whether it exists.
func (s Schema) Table(name string) (TableSchema, bool) {
	for _, t := range s.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return TableSchema{}, false
}

// Column returns the named column and whether it exists.
func (t TableSchema) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}
