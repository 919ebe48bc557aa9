package domain

// Taxonomy is the distinct sets of known role and department labels, used by
// the admin UI for autocomplete.
type Taxonomy struct {
	Roles       []string `json:"roles"`
	Departments []string `json:"departments"`
}

// HealthCounts is the health endpoint payload: an ok flag (the queries ran)
// plus aggregate counts.
type HealthCounts struct {
	OK        bool `json:"ok"`
	Rooms     int  `json:"rooms"`
	Employees int  `json:"employees"`
}
