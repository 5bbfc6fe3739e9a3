// Package jwt issues and verifies HS256 session tokens and provides helpers for
// carrying them over HTTP.
//
// An Issuer is built once at startup from a Config and never changes
// afterwards. Every token it signs names a subject (the user id) and carries
// issued-at, expiry and a random token id:
//
//	issuer, err := jwt.New(cfg)
//	if err != nil {
//		return err
//	}
//
//	token, err := issuer.Issue(user.ID)
//
//	claims, err := issuer.Verify(token)
//	switch {
//	case errors.Is(err, jwt.ErrExpiredToken):
//		// ask the user to log in again
//	case err != nil:
//		// malformed or forged
//	}
//
// Verify checks the signature before anything else, so a forged token never
// reports ErrExpiredToken. Expiry is compared against the same clock that was
// used at issuance (see WithClock).
//
// # Transport
//
// BearerTokenExtractor, CookieTokenExtractor and HeaderTokenExtractor pull a
// raw token from a request. SetToken and GetToken keep it on a context.
package jwt
