// Package reason maps machine-readable auth reason codes to localized,
// user-facing messages. Login and signup failures render through this
// mapping; raw codes or stack traces never reach the screen.
package reason
