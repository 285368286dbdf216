package model

// Account is a locally known account
type Account struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

// AccountDirectory maps an address to its local account
type AccountDirectory map[string]Account

// NewAccountDirectory builds a directory from a list of accounts.
// Accounts without an address are skipped; a later duplicate replaces an earlier one.
func NewAccountDirectory(accounts []Account) AccountDirectory {
	dir := make(AccountDirectory, len(accounts))
	for _, a := range accounts {
		if a.Address == "" {
			continue
		}
		dir[a.Address] = a
	}
	return dir
}

// Lookup finds an account by exact address
func (d AccountDirectory) Lookup(address string) (Account, bool) {
	if d == nil || address == "" {
		return Account{}, false
	}
	a, ok := d[address]
	return a, ok
}

// DisplayParty is how a sender or receiver is shown on the review screen
type DisplayParty struct {
	Label          string  `json:"label"`
	IsKnownAccount bool    `json:"is_known_account"`
	SecondaryLabel *string `json:"secondary_label,omitempty"`
}

// Title is the label with a " (You)" suffix for known accounts
func (p DisplayParty) Title() string {
	if p.IsKnownAccount {
		return p.Label + " (You)"
	}
	return p.Label
}
