package market

import "time"

// Project is one carbon-offset initiative from the projects table, with all
// derived fields already attached.
type Project struct {
	ID                string    `json:"project_id"`
	Name              string    `json:"name"`
	Country           string    `json:"country"`
	ProjectType       string    `json:"project_type"`
	FirstIssuanceAt   time.Time `json:"first_issuance_at"`
	FirstRetirementAt time.Time `json:"first_retirement_at"`

	// HasIssuance and HasRetirement record whether the source carried a parseable
	// timestamp. The stored timestamps above always hold the sentinel defaults
	// when the source was missing or malformed.
	HasIssuance   bool `json:"-"`
	HasRetirement bool `json:"-"`

	Issued             float64 `json:"issued"`
	ImplementationYear int     `json:"implementation_year"`
	ProjectDuration    int     `json:"project_duration"`
	CO2Reduced         float64 `json:"co2_reduced"`
}

// Credit is one market transaction from the credits table. Price is always
// synthesized deterministically from volume and the row's pre-join ordinal
// position; it is a placeholder, not a market price.
type Credit struct {
	ProjectID       string     `json:"project_id"`
	Volume          float64    `json:"volume"`
	Price           float64    `json:"price"`
	TransactionDate *time.Time `json:"transaction_date,omitempty"`
	Ordinal         int        `json:"-"`
}

// MergedRecord is one (project, credit) pair produced by the inner join.
type MergedRecord struct {
	Project
	Credit        Credit `json:"credit"`
	ProjectTypePT string `json:"project_type_pt"`
}

// Sources names the three static input files of the pipeline.
type Sources struct {
	ProjectsPath   string
	CreditsPath    string
	BoundariesPath string
}

// Snapshot is the immutable result of the load-and-derive pipeline. It is
// computed once per process (memoized by input-file identity) and shared by
// reference with every view; views never mutate it.
type Snapshot struct {
	Projects []Project
	Credits  []Credit
	Merged   []MergedRecord

	// Boundaries is nil when the boundary file is missing or unreadable; the
	// geographic view degrades instead of failing.
	Boundaries *FeatureCollection

	// HasTransactionDates is false when the credits table carries no
	// transaction_date column; the timeline view degrades instead of failing.
	HasTransactionDates bool

	Fingerprint string
	LoadedAt    time.Time
}
