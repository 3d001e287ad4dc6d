// Package dashboard is a thin client for the authenticated dashboard
// endpoints. It consumes the auth headers produced by the auth client's
// transport and translates HTTP status codes into the session lifecycle:
// 401 means the session is expired and must be torn down, 5xx is a server
// fault the UI can retry.
package dashboard
