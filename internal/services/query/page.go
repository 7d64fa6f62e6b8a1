package query

// Paginate returns page number `page` (zero-based) of `size` items.
// Pages past the end, and a size of zero, yield an empty slice.
// Callers must reject negative page or size.
func Paginate[T any](items []T, page, size int) []T {
	if size == 0 || page >= PageCount(len(items), size) {
		return []T{}
	}
	// page < PageCount bounds start by len(items), so this cannot overflow
	start := page * size
	end := min(start+size, len(items))
	return items[start:end]
}

// PageCount returns how many pages of `size` cover n items
func PageCount(n, size int) int {
	if size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
