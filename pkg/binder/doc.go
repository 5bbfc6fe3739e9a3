// Package binder decodes HTTP request bodies into typed request values.
//
// JSON returns a handler.Bind compatible function that checks the media type,
// caps the body size, rejects unknown fields and trailing data:
//
//	h := handler.Wrap(loginHandler, handler.WithBinder[handler.Context, LoginRequest](binder.JSON()))
//
// Types that implement json.Unmarshaler receive the raw object and decide for
// themselves how unknown fields are treated.
//
// String values are bound verbatim. Normalization belongs to the caller, since
// trimming a password would change the credential.
package binder
