// Package password hashes and verifies user passwords with argon2id.
//
// Hashes are encoded in the PHC string format so every stored value carries its
// own salt and cost parameters:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
//
// Verification always recomputes with the parameters embedded in the stored
// value, which means cost settings can be raised without invalidating existing
// hashes. NeedsRehash reports when a stored hash is weaker than the current
// configuration.
//
// # Usage
//
//	var cfg password.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	hasher, err := password.New(cfg)
//	if err != nil {
//		return err
//	}
//
//	encoded, err := hasher.Hash("correct horse battery staple")
//	ok, err := hasher.Verify("correct horse battery staple", encoded)
//
// # Error Handling
//
// A wrong password is not an error: Verify returns (false, nil). A stored value
// that cannot be parsed returns ErrCorruptHash so callers can tell data
// corruption apart from a failed login.
package password
