// Package credentials persists the session credential in the client's
// local SQLite database so it survives process restarts. The layout is two
// scalar keys — the token string and the serialized user snapshot — always
// written and cleared together inside one transaction.
package credentials
