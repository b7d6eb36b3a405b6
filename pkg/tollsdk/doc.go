// Package tollsdk provides a Go client for the tollgate token service, plus
// the wire types and error type shared between the server handlers and
// consumers. Keeping the shapes in one package means the e2e tests and any
// downstream service speak exactly the dialect the handlers write.
package tollsdk
