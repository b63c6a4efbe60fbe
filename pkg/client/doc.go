// Package client is a typed HTTP client for the Expensio API: the password
// login flow, email-verification registration, expense CRUD, and the chat
// passthrough. Authenticated calls carry the session's bearer token.
package client
