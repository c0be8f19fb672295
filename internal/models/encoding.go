package models

// Encoding maps the category labels of one column to integer codes. A label's
// code is its position in Labels.
type Encoding struct {
	Column string
	Labels []string
}

// Code returns the code for label.
func (e Encoding) Code(label string) (int, bool) {
	for i, l := range e.Labels {
		if l == label {
			return i, true
		}
	}
	return 0, false
}

// EncodingTable is the ordered set of encodings applied to a record set.
type EncodingTable struct {
	encodings []Encoding
}

// With returns a table that also holds e, replacing any encoding for the same
// column.
func (t EncodingTable) With(e Encoding) EncodingTable {
	labels := make([]string, len(e.Labels))
	copy(labels, e.Labels)
	e.Labels = labels

	out := make([]Encoding, 0, len(t.encodings)+1)
	for _, existing := range t.encodings {
		if existing.Column != e.Column {
			out = append(out, existing)
		}
	}
	return EncodingTable{encodings: append(out, e)}
}

func (t EncodingTable) Lookup(column string) (Encoding, bool) {
	for _, e := range t.encodings {
		if e.Column == column {
			labels := make([]string, len(e.Labels))
			copy(labels, e.Labels)
			return Encoding{Column: e.Column, Labels: labels}, true
		}
	}
	return Encoding{}, false
}

// Columns lists the encoded columns in the order they were added.
func (t EncodingTable) Columns() []string {
	out := make([]string, len(t.encodings))
	for i, e := range t.encodings {
		out[i] = e.Column
	}
	return out
}

func (t EncodingTable) Code(column, label string) (int, bool) {
	e, ok := t.Lookup(column)
	if !ok {
		return 0, false
	}
	return e.Code(label)
}

func (t EncodingTable) Label(column string, code int) (string, bool) {
	e, ok := t.Lookup(column)
	if !ok || code < 0 || code >= len(e.Labels) {
		return "", false
	}
	return e.Labels[code], true
}
