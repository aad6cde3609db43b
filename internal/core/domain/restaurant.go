package domain

import "errors"

var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrPartialWrite marks a dual-store operation that left the identity store
// and the document store disagreeing about an account. The reconciler picks
// these up via the journal.
var ErrPartialWrite = errors.New("partial write across identity and document stores")

// Restaurant is the account document stored under the restaurants collection.
// Its ID doubles as the identity-store user id; the two are set to the same
// value at creation time and never re-derived.
type Restaurant struct {
	ID           string         `json:"id" bson:"_id,omitempty"`
	Name         string         `json:"name" bson:"name"`
	Email        string         `json:"email" bson:"email"`
	PasswordHash string         `json:"-" bson:"password_hash"`
	Extra        map[string]any `json:"-" bson:",inline"`
}

// Profile flattens the account into the shape returned by the API: typed
// fields plus whatever extension fields the caller stored, credential omitted.
func (r *Restaurant) Profile() map[string]any {
	out := make(map[string]any, len(r.Extra)+3)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["id"] = r.ID
	out["name"] = r.Name
	out["email"] = r.Email
	return out
}
