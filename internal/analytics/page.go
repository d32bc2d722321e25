package analytics

// paginate trims a result fetched with limit+1 rows down to limit and reports
// whether the extra row was present.
func paginate[T any](rows []T, limit int) ([]T, bool) {
	if len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}
