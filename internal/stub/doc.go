// Package stub implements an in-process stand-in for the authentication
// backend the session client talks to.
//
// It serves the register and login endpoints plus the sessions resource on a
// chi router. Login answers with the caller's redirect URL rebuilt from the
// prefix, host, port and resources query parameters and extended with the new
// session and user IDs. Access tokens are HS256 JWTs whose subject is the user
// ID; refresh tokens are random UUIDs rotated on every refresh. Persistence is
// delegated to the repositories of the store package.
package stub
