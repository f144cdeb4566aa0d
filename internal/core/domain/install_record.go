package domain

import "time"

// InstallRecord is written to the ledger after a dependency has been installed.
type InstallRecord struct {
	Dependency    string    `json:"dependency,omitzero"`
	Fingerprint   string    `json:"fingerprint,omitzero"`
	InstallPrefix string    `json:"install_prefix,omitzero"`
	InstalledAt   time.Time `json:"installed_at,omitzero"`
}
