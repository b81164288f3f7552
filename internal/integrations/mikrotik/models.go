package mikrotik

// Secret PPPoE-учётка из /ppp/secret
// RouterOS REST отдаёт все поля строками
type Secret struct {
	ID       string `json:".id"`
	Name     string `json:"name"`
	Service  string `json:"service"`
	Profile  string `json:"profile"`
	Comment  string `json:"comment"`
	Disabled string `json:"disabled"`
}

// IsDisabled returns true if the secret is disabled on the router
func (s Secret) IsDisabled() bool {
	return s.Disabled == "true"
}
