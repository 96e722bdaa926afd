package entity

// CredentialSet holds the Twilio credentials resolved from ChittyID.
// Transient: the source of truth is the credential service, we only keep
// a short-lived cache copy.
type CredentialSet struct {
	AccountSID  string `json:"accountSid"`
	AuthToken   string `json:"authToken"`
	PhoneNumber string `json:"phoneNumber"`
}
