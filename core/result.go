package core

import "fmt"

// Result is the drained form of the ResultStream iterator.
type Result struct {
	Header Header
	Rows   []Row
	Meta   *Meta
}

// NewResult drains the iterator into a Result and closes it.
func NewResult(iter ResultStream) (*Result, error) {
	defer iter.Close()

	result := &Result{
		Header: iter.Header(),
		Meta:   iter.Meta(),
		Rows:   make([]Row, 0),
	}
	if result.Meta == nil {
		result.Meta = &Meta{}
	}

	for iter.HasNext() {
		row, err := iter.Next()
		if err != nil {
			return nil, fmt.Errorf("iter.Next: %w", err)
		}

		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func (r *Result) Len() int {
	return len(r.Rows)
}

func (r *Result) Format(formatter Formatter) ([]byte, error) {
	opts := &FormatterOptions{
		SchemaType: r.Meta.SchemaType,
	}

	f, err := formatter.Format(r.Header, r.Rows, opts)
	if err != nil {
		return nil, fmt.Errorf("formatter.Format: %w", err)
	}

	return f, nil
}
