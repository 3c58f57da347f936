package core

// BucketTotal is the count and summed amount of one bucket.
type BucketTotal struct {
	Count int
	Total Money
}

// Summary holds the headline numbers of the bills overview.
type Summary struct {
	DueToday      BucketTotal
	Upcoming      BucketTotal
	Overdue       BucketTotal
	PaidThisMonth BucketTotal
}

// CategoryAmount represents an amount aggregated by category.
type CategoryAmount struct {
	Category Category
	Count    int
	Amount   Money
}
