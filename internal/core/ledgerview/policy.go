package ledgerview

import "strings"

// CompanyNamePlaceholder is the unconfigured default company name. Company
// party detection stays disabled until the owner replaces it, otherwise every
// party named "Company" would be misclassified before setup completes.
const CompanyNamePlaceholder = "Company"

const commissionPartyName = "commission"

// IsCompanyParty reports whether a party is the ledger owner's own company
// party. Detection compares names exactly and is disabled entirely while the
// configured company name is unset or still the placeholder.
func IsCompanyParty(partyName, companyName string) bool {
	if companyName == "" || companyName == CompanyNamePlaceholder {
		return false
	}
	return partyName == companyName
}

// IsCommissionParty reports whether a party is the fixed Commission party,
// matched case-insensitively by name.
func IsCommissionParty(partyName string) bool {
	return strings.EqualFold(strings.TrimSpace(partyName), commissionPartyName)
}

// isRestrictedParty covers the two distinguished, system-managed parties whose
// entries are read-only with respect to editing, deletion, and settlement.
func isRestrictedParty(partyName, companyName string) bool {
	return IsCompanyParty(partyName, companyName) || IsCommissionParty(partyName)
}

// IsMondayFinalAllowed reports whether a party participates in the Monday
// Final settlement.
func IsMondayFinalAllowed(partyName, companyName string) bool {
	return !isRestrictedParty(partyName, companyName)
}

// IsPartyEditingAllowed reports whether a party may be manually edited.
func IsPartyEditingAllowed(partyName, companyName string) bool {
	return !isRestrictedParty(partyName, companyName)
}

// IsPartyDeletionAllowed reports whether a party may be manually deleted.
func IsPartyDeletionAllowed(partyName, companyName string) bool {
	return !isRestrictedParty(partyName, companyName)
}

// IsTransactionAdditionAllowed reports whether manual transactions may be
// added to a party's ledger.
func IsTransactionAdditionAllowed(partyName, companyName string) bool {
	return !isRestrictedParty(partyName, companyName)
}
