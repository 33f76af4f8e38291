package book

import (
	"math"
	"reflect"
)

// IsBook reports whether value exposes id and price as integer numbers and title and author as strings.
// It never panics: missing fields or values which are not objects make it return false.
func IsBook(value any) bool {
	_, ok := toBook(value)
	return ok
}

// IsBookArray reports whether value is a sequence whose elements all satisfy IsBook.
// An empty sequence is valid.
func IsBookArray(value any) bool {
	if !isSequence(value) {
		return false
	}
	for _, elem := range elements(value) {
		if !IsBook(elem) {
			return false
		}
	}
	return true
}

func toBook(value any) (Book, bool) {
	switch v := value.(type) {
	case Book:
		return v, true
	case *Book:
		if v == nil {
			return Book{}, false
		}
		return *v, true
	case map[string]any:
		return fromFields(v)
	}
	return Book{}, false
}

func fromFields(fields map[string]any) (Book, bool) {
	var (
		b  Book
		ok bool
	)
	if b.ID, ok = integer(fields["id"]); !ok {
		return Book{}, false
	}
	if b.Title, ok = fields["title"].(string); !ok {
		return Book{}, false
	}
	if b.Author, ok = fields["author"].(string); !ok {
		return Book{}, false
	}
	if b.Price, ok = integer(fields["price"]); !ok {
		return Book{}, false
	}
	return b, true
}

// number is implemented by json.Number and by the number types of other JSON decoders
type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
}

// integer accepts every numeric primitive holding a whole value. Numeric strings are not numbers.
func integer(value any) (int64, bool) {
	switch n := value.(type) {
	case number:
		return numberValue(n)
	case float64:
		return wholeFloat(n)
	case float32:
		return wholeFloat(float64(n))
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return unsigned(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return unsigned(n)
	}
	return 0, false
}

func numberValue(n number) (int64, bool) {
	if i, err := n.Int64(); err == nil {
		return i, true
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return wholeFloat(f)
}

func wholeFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func unsigned(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// isSequence reports whether value is a slice or array whose elements could hold a book.
// Sequences of scalars, such as []byte, are never books.
func isSequence(value any) bool {
	if value == nil {
		return false
	}
	t := reflect.TypeOf(value)
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		return false
	}
	switch t.Elem().Kind() {
	case reflect.Interface, reflect.Map, reflect.Struct, reflect.Pointer:
		return true
	}
	return false
}

func elements(value any) []any {
	if elems, ok := value.([]any); ok {
		return elems
	}
	if !isSequence(value) {
		return nil
	}
	rv := reflect.ValueOf(value)
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems
}
