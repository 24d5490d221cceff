package table

import (
	"slices"
	"strings"
)

// Direction is the sort order of a column.
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

// Next cycles ascending → descending → unsorted.
func (d Direction) Next() Direction {
	switch d {
	case Unsorted:
		return Ascending
	case Ascending:
		return Descending
	default:
		return Unsorted
	}
}

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return ""
	}
}

// Sort is the single active sort column of a view.
type Sort struct {
	Key string
	Dir Direction
}

// Toggle returns the state after clicking the header of column key.
func (s Sort) Toggle(key string) Sort {
	if s.Key != key {
		return Sort{Key: key, Dir: Ascending}
	}
	next := s.Dir.Next()
	if next == Unsorted {
		return Sort{}
	}
	return Sort{Key: key, Dir: next}
}

// Param encodes the sort for a query string, e.g. "full_name:desc".
func (s Sort) Param() string {
	if s.Key == "" || s.Dir == Unsorted {
		return ""
	}
	return s.Key + ":" + s.Dir.String()
}

// ParseSort decodes Param output. Unknown input yields the unsorted state.
func ParseSort(v string) Sort {
	key, dir, ok := strings.Cut(v, ":")
	if !ok || key == "" {
		return Sort{}
	}
	switch dir {
	case "asc":
		return Sort{Key: key, Dir: Ascending}
	case "desc":
		return Sort{Key: key, Dir: Descending}
	default:
		return Sort{}
	}
}

// SortRows returns a sorted copy of rows. The input order is left intact so
// that returning to Unsorted restores it.
func SortRows[R any](rows []R, columns []Column[R], s Sort) []R {
	out := slices.Clone(rows)
	if s.Dir == Unsorted {
		return out
	}
	var cmp func(a, b R) int
	for _, c := range columns {
		if c.Key == s.Key {
			cmp = c.Compare
			break
		}
	}
	if cmp == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b R) int {
		if s.Dir == Descending {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return out
}
