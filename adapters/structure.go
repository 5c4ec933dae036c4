package adapters

import "github.com/hr-tools/hrdb/core"

// structureFromCatalog converts rows in (schema, name, type) form into a
// schema-grouped structure tree. decodeType maps the catalog's type column
// to a structure type.
func structureFromCatalog(rows core.ResultStream, decodeType func(string) core.StructureType) ([]*core.Structure, error) {
	children := make(map[string][]*core.Structure)
	var schemas []string

	for rows.HasNext() {
		row, err := rows.Next()
		if err != nil {
			return nil, err
		}

		if len(row) < 3 {
			continue
		}

		schema, ok1 := row[0].(string)
		name, ok2 := row[1].(string)
		typ, ok3 := row[2].(string)
		if !ok1 || !ok2 || !ok3 {
			continue
		}

		if _, ok := children[schema]; !ok {
			schemas = append(schemas, schema)
		}

		children[schema] = append(children[schema], &core.Structure{
			Name:   name,
			Schema: schema,
			Type:   decodeType(typ),
		})
	}

	var structure []*core.Structure
	for _, schema := range schemas {
		structure = append(structure, &core.Structure{
			Name:     schema,
			Schema:   schema,
			Type:     core.StructureTypeNone,
			Children: children[schema],
		})
	}

	return structure, nil
}
