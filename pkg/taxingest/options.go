// Package taxingest converts the annual state income tax spreadsheet
// publication into normalized per-state records.
package taxingest

import "github.com/statetax/taxingest-go/pkg/taxingest/parser"

// Options configures ingestion behavior.
type Options struct {
	// AllYears processes every year-named sheet instead of only the most
	// recent one. The historical behavior stops after the most recent
	// sheet; leave this false to preserve it.
	AllYears bool
	// Layout overrides the publication column layout.
	// If nil, parser.DefaultLayout() is used.
	Layout *parser.Layout
}

// DefaultOptions returns default ingestion options.
func DefaultOptions() Options {
	return Options{}
}

// EffectiveLayout returns the column layout to use.
func (o Options) EffectiveLayout() parser.Layout {
	if o.Layout != nil {
		return *o.Layout
	}
	return parser.DefaultLayout()
}
