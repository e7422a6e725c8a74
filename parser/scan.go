package parser

// Malformed is the position returned for a column that cannot be scanned.
const Malformed = -1

const quote = '"'

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// LocateField scans the column that starts at start in b[:limit].
//
// It returns the content span [from, to) and the start of the next column.
// The span excludes surrounding quotes and whitespace. next is one past the
// delimiter, or limit when the column runs to the end of the window. All
// three are Malformed when the column has an unterminated quote or
// non-whitespace content after its closing quote.
//
// Quoted fields have no escape mechanism: the first quote after the opening
// one closes the field.
func LocateField(b []byte, start, limit int, delim byte) (from, to, next int) {
	i := start
	for i < limit && isSpace(b[i]) {
		i++
	}

	if i < limit && b[i] == quote {
		i++
		from = i
		for i < limit && b[i] != quote {
			i++
		}
		if i == limit {
			return Malformed, Malformed, Malformed
		}
		to = i
		i++
		for i < limit && b[i] != delim {
			if !isSpace(b[i]) {
				return Malformed, Malformed, Malformed
			}
			i++
		}
		return from, to, advance(i, limit)
	}

	from = i
	for i < limit && b[i] != delim {
		i++
	}
	to = i
	for to > from && isSpace(b[to-1]) {
		to--
	}
	return from, to, advance(i, limit)
}

// SkipField returns the start of the column after the one at start, or
// Malformed.
func SkipField(b []byte, start, limit int, delim byte) int {
	_, _, next := LocateField(b, start, limit, delim)
	return next
}

func advance(i, limit int) int {
	if i == limit {
		return limit
	}
	return i + 1
}
