package domain

// AdminSession is a back-office login session, keyed by an opaque token
// handed to the browser as an httpOnly cookie.
//
// Sessions are never swept: an expired record stays in storage until the
// next verification touches it and removes it (lazy expiry). That is
// acceptable because verification is the only read path.
type AdminSession struct {
	UserID string `json:"userId"`

	// Expires is the absolute expiry instant. The session is invalid
	// once now > Expires.
	Expires Millis `json:"expires"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s AdminSession) Expired(now Millis) bool {
	return now > s.Expires
}
