package paging

import "strconv"

// Page is a 1-based page number with a fixed page size.
type Page struct {
	Number int
	Size   int
}

// New clamps the page number to at least 1.
func New(number, size int) Page {
	if number < 1 {
		number = 1
	}
	return Page{Number: number, Size: size}
}

/* Parse reads a page number from a query value
 * Anything that is not a positive integer means the first page
 */
func Parse(raw string, size int) Page {
	n, err := strconv.Atoi(raw)
	if err != nil {
		n = 1
	}
	return New(n, size)
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}

// Pages is the number of pages needed for total items, never less than one.
func (p Page) Pages(total int) int {
	if total <= 0 || p.Size <= 0 {
		return 1
	}
	return (total + p.Size - 1) / p.Size
}
