// Package authclient performs login and signup against the SmartOkO auth
// endpoints and keeps the credential store and the session state container
// consistent with the outcome.
//
// Expected outcomes are data, not errors: a wrong password, a disabled
// account, an unreachable server and a busy session all come back inside
// LoginResult / SignUpResult. Only storage and protocol faults travel as Go
// errors.
//
// # Usage
//
//	var cfg authclient.Config
//	config.MustLoad(&cfg)
//
//	client, err := authclient.New(cfg, store, sessions,
//		authclient.WithLogger(log),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.Login(ctx, username, password)
//	if err != nil {
//		// storage or protocol fault, session is auth_failed
//	}
//	switch result.Status {
//	case authclient.LoginSuccess:
//		// session is logged_in, credentials persisted
//	case authclient.LoginRejected:
//		// show a localized message for result.ReasonCode
//	case authclient.LoginUnreachable, authclient.LoginBusy:
//		// transient, caller decides whether to re-invoke
//	}
//
// Ordering guarantees on success: the token bundle and the profile are
// written to the credential store before the logged-in transition is
// published. Logout is the inverse with inverted priorities: the logged-out
// transition is published unconditionally even when storage cleanup fails.
//
// For authenticated requests to other endpoints, use AuthHeaders directly
// or wrap an HTTP client with NewTransport.
package authclient
