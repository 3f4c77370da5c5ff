package entities

// DecadeCount is one row of the by-decade aggregate
type DecadeCount struct {
	Decade int   `db:"decade"`
	Total  int64 `db:"total"`
}
