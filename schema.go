package daikinhttp

// RawRecord is one decoded appliance response: field name to wire value.
type RawRecord map[string]string

// Clone returns a copy that shares nothing with r.
func (r RawRecord) Clone() RawRecord {
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Fields is a record after coercion. Values are int, *float64, bool or string
// depending on the kind the schema assigns to the field.
type Fields map[string]any

func (f Fields) Int(key string) int {
	if n, ok := f[key].(int); ok {
		return n
	}
	return 0
}

func (f Fields) Temperature(key string) *float64 {
	if t, ok := f[key].(*float64); ok {
		return t
	}
	return nil
}

func (f Fields) Bool(key string) bool {
	if b, ok := f[key].(bool); ok {
		return b
	}
	return false
}

func (f Fields) String(key string) string {
	if s, ok := f[key].(string); ok {
		return s
	}
	return ""
}

// Schema assigns coercion kinds to field names. Field lists of different
// kinds must not overlap; this is not checked.
type Schema map[Kind][]string

// Parse types every field the schema names and copies the rest as strings.
// Named fields that are missing from raw still get their kind's default.
func (s Schema) Parse(raw RawRecord) Fields {
	out := make(Fields, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	for kind, names := range s {
		c := coercionFor(kind)
		for _, name := range names {
			out[name] = c.parse(raw[name])
		}
	}
	return out
}

// Format renders fields back to wire strings. Only keys present in fields are emitted.
func (s Schema) Format(fields Fields) RawRecord {
	out := make(RawRecord, len(fields))
	for k, v := range fields {
		out[k] = formatDefault(v)
	}
	for kind, names := range s {
		c := coercionFor(kind)
		for _, name := range names {
			if v, ok := fields[name]; ok {
				out[name] = c.format(v)
			}
		}
	}
	return out
}
