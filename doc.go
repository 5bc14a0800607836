/*
Package custody defines the common interfaces that tie the custody engine
together: addresses and conditions, messages and transactions, handlers and
decorators, key-value stores, and the request context.

The threshold-authorization logic itself lives in the extension packages
under x/. This package only provides the building blocks they share.
*/
package custody
