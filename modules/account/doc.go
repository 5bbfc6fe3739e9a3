// Package account mounts the credential endpoints on a chi router.
//
// Routes, relative to the mount point:
//
//	POST /auth             create a user
//	POST /auth/register    create a user and return a session token
//	POST /auth/login       exchange email and password for a session token
//	GET  /auth             list users (requires a token)
//	GET  /auth/check-token re-issue a token for the caller (requires a token)
//
// Every failure, including rejections from the auth gate, is rendered by the
// responder returned from NewErrorResponder.
package account
