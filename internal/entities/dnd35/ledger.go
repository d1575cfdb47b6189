package dnd35

// LedgerCategory groups rollback entries
type LedgerCategory string

// Ledger categories
const (
	LedgerAbilities LedgerCategory = "abilities"
	LedgerSkills    LedgerCategory = "skills"
	LedgerFeats     LedgerCategory = "feats"
)

// RollbackLedger records the points granted or spent since the last level-up,
// keyed by category then identifier
type RollbackLedger map[LedgerCategory]map[string]int

func (l RollbackLedger) record(category LedgerCategory, id string, amount int) {
	entries, ok := l[category]
	if !ok {
		entries = map[string]int{}
		l[category] = entries
	}
	entries[id] += amount
}

// Amount returns the recorded amount for an identifier
func (l RollbackLedger) Amount(category LedgerCategory, id string) int {
	return l[category][id]
}

// IsEmpty reports whether nothing has been recorded
func (l RollbackLedger) IsEmpty() bool {
	for _, entries := range l {
		if len(entries) > 0 {
			return false
		}
	}
	return true
}

func (l RollbackLedger) clone() RollbackLedger {
	out := make(RollbackLedger, len(l))
	for category, entries := range l {
		out[category] = cloneInts(entries)
	}
	return out
}
