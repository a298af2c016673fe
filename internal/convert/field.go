package convert

// ExtractField parses one raw line into a converted field declaration.
// The second return value is false when the line is not a field or its type
// is on the ignore-set; neither case is an error, the line is simply skipped.
func (c *Converter) ExtractField(raw string) (FieldDeclaration, bool) {
	line := Classify(raw)
	if line.Kind != LineField {
		return FieldDeclaration{}, false
	}
	return c.ConvertField(line.Field)
}

// ConvertField converts an already-extracted raw field.
func (c *Converter) ConvertField(raw RawField) (FieldDeclaration, bool) {
	converted, ok := c.Convert(raw.RawType)
	if !ok {
		return FieldDeclaration{}, false
	}

	name := c.sanitizer.Identifier(CleanFieldName(raw.RawName))

	return FieldDeclaration{
		Offset: raw.Offset,
		Type:   converted,
		Name:   name,
	}, true
}
