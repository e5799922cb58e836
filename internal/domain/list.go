package domain

// ListResult is a filtered page of profiles plus the per-category tallies
// shown next to each filter button.
type ListResult[T any] struct {
	Items      []T
	Total      int
	Counts     []CategoryCount
	Industries []string
	Suggestion string
}

// CategoryCount is the number of profiles matching a filter category.
type CategoryCount struct {
	Category string
	Label    string
	Count    int
}
