package ledgerview

import "strings"

// ResolvePartyName produces the single string shown in the party-name column.
//
// At least three historical data-entry conventions meet in this column: a
// user-selected override, a structured counterparty field, and a legacy
// free-text "name: note" encoding inside remarks. The layered fallback below
// reconciles all of them; picking only the newest convention would misrender
// older records.
func ResolvePartyName(remarks, counterpartyName, overrideName string) string {
	if overrideName != "" {
		return nameWithRemarks(overrideName, remarks)
	}
	if counterpartyName != "" {
		return nameWithRemarks(counterpartyName, remarks)
	}
	if idx := strings.Index(remarks, ":"); idx >= 0 {
		// Legacy rows encode "party: note" in remarks. Split on the
		// first colon only; multi-colon remarks keep the rest intact.
		legacyName := strings.TrimSpace(remarks[:idx])
		legacyRemarks := strings.TrimSpace(remarks[idx+1:])
		if legacyRemarks != "" && legacyRemarks != legacyName {
			return legacyName + "(" + legacyRemarks + ")"
		}
		return legacyName
	}
	// No structured field and no legacy encoding: the whole remark is the name.
	return remarks
}

// nameWithRemarks appends colon-free remarks to a structured name. Remarks
// containing a colon are legacy-encoded rows whose note already lives in the
// name column of some other convention, so they are left off entirely.
func nameWithRemarks(name, remarks string) string {
	if remarks != "" && !strings.Contains(remarks, ":") {
		return name + "(" + strings.TrimSpace(remarks) + ")"
	}
	return name
}
