package countries

// Accepted sort keys for List.
const (
	SortNameAsc        = "name_asc"
	SortNameDesc       = "name_desc"
	SortGdpAsc         = "gdp_asc"
	SortGdpDesc        = "gdp_desc"
	SortPopulationAsc  = "population_asc"
	SortPopulationDesc = "population_desc"

	// DefaultSort applies when no sort parameter is given.
	DefaultSort = SortNameAsc
)

// sortOrders maps sort keys to ORDER BY clauses. estimated_gdp is nullable,
// so the GDP sorts pin NULL rows to the end regardless of direction.
var sortOrders = map[string]string{
	SortNameAsc:        "name ASC",
	SortNameDesc:       "name DESC",
	SortGdpAsc:         "estimated_gdp IS NULL, estimated_gdp ASC",
	SortGdpDesc:        "estimated_gdp IS NULL, estimated_gdp DESC",
	SortPopulationAsc:  "population ASC",
	SortPopulationDesc: "population DESC",
}

// ValidSort reports whether s is an accepted sort key.
func ValidSort(s string) bool {
	_, ok := sortOrders[s]
	return ok
}
