// Package handler provides type-safe HTTP request handling for JSON APIs.
//
// Handlers are generic functions that receive a bound request value and
// return a Response. Wrap adapts them to http.HandlerFunc:
//
//	type LoginRequest struct {
//		Email    string `json:"email"`
//		Password string `json:"password"`
//	}
//
//	func login(ctx handler.Context, req LoginRequest) handler.Response {
//		session, err := svc.Login(ctx, req.Email, req.Password)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(session)
//	}
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinder[handler.Context, LoginRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, LoginRequest](errs),
//	))
//
// # Responses
//
// JSON writes the {"data": ...} envelope. Error defers to the error handler
// so every failure is rendered in one place as {"error": {"code", "message",
// "details"}}.
//
// # Errors
//
// An ErrorClassifier turns an error into an ErrorInfo (status, code, public
// message). DefaultClassifier understands HTTPError, binder failures and
// validator.ValidationErrors; applications chain their own domain mapping in
// front of it. Server errors never expose err.Error() to the client; the
// full error is logged with the request id.
package handler
