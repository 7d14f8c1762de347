package session

import "net/http"

// IdentityKey is the session key holding the logged-in customer.
const IdentityKey = "customer"

// Identity is the customer triple carried by an authenticated session.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ReadIdentity returns the session's customer, or nil when the session is
// anonymous. A partially populated or undecodable entry counts as anonymous.
func ReadIdentity(s *Session) *Identity {
	if s == nil {
		return nil
	}
	var id Identity
	ok, err := s.Get(IdentityKey, &id)
	if err != nil || !ok {
		return nil
	}
	if id.ID == "" || id.Name == "" || id.Phone == "" {
		return nil
	}
	return &id
}

// WriteIdentity stores id in the session and reissues the cookie. A nil id
// logs the customer out by nulling the key; the rest of the bag survives.
func WriteIdentity(s *Session, w http.ResponseWriter, id *Identity) error {
	if err := s.Set(IdentityKey, id); err != nil {
		return err
	}
	return s.Save(w)
}
