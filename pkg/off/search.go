package off

// SortBy selects the ordering of search results.
type SortBy int

const (
	// SortByPopularity orders by number of unique scans.
	SortByPopularity SortBy = iota
	// SortByProductName orders alphabetically by product name.
	SortByProductName
	// SortByCreatedDate orders by product creation date.
	SortByCreatedDate
	// SortByLastModifiedDate orders by last edit date.
	SortByLastModifiedDate
	// SortByEcoScore orders by Eco-Score.
	SortByEcoScore
)

// String returns the wire value of the sort_by parameter.
func (s SortBy) String() string {
	switch s {
	case SortByProductName:
		return "product_name"
	case SortByCreatedDate:
		return "created_t"
	case SortByLastModifiedDate:
		return "last_modified_t"
	case SortByEcoScore:
		return "ecoscore_score"
	default:
		return "unique_scans_n"
	}
}

// Query is a search query accepted by [Client.Search]. The two
// implementations are [QueryV0] and [QueryV2]; a query only works with a
// client bound to the same [Version].
//
// A query is single-owner and single-use: build it with chained calls,
// pass it to Search once, and do not reuse it afterward.
type Query interface {
	// queryVersion reports which API generation the query serializes for.
	queryVersion() Version

	// queryParams serializes the accumulated state to ordered pairs.
	queryParams() Params
}
