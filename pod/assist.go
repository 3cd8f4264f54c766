package pod

// Assist bundles every component built from one Config, for hosts that want
// all of them.
type Assist struct {
	Scanner     *Scanner
	NoBreak     *NoBreakAdvisor
	GreaterThan *GreaterThanInserter
	Doubler     *Doubler
	Warnings    *WarningScanner
}

// New builds an Assist. rules selects warning rules as in NewWarningScanner.
func New(cfg Config, rules ...string) *Assist {
	scan := NewScanner(cfg)
	return &Assist{
		Scanner:     scan,
		NoBreak:     &NoBreakAdvisor{scan: scan},
		GreaterThan: &GreaterThanInserter{scan: scan},
		Doubler:     &Doubler{scan: scan},
		Warnings:    NewWarningScanner(cfg, rules...),
	}
}
