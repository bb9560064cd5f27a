package reconcile

// Config holds the defaults for a reconciliation run.
type Config struct {
	// Mode selects the party column to filter the distribution ledger by
	// (guild or alliance).
	Mode string `mapstructure:"mode" default:"guild"`
	// Parties is the comma-separated allow-list of party names whose
	// handouts are reconciled.
	Parties string `mapstructure:"parties" default:"Tidal"`
	// Output is the report workbook filename.
	Output string `mapstructure:"output" default:"output.xlsx"`
	// MaxConcurrency caps simultaneous suspect lookups (0 = unbounded).
	MaxConcurrency int `mapstructure:"max_concurrency" default:"0"`
}
