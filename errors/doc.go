/*
Package errors implements custom error interfaces for the custody engine.

Each returned error is expected to be created from one of the registered root
errors, so that it carries a stable error code that can be returned to the
client without leaking internal details. Use Wrap and Wrapf to add context to
an error while preserving its root cause and use the root error Is method to
test an error kind.
*/
package errors
