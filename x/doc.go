/*
Package x contains the extensions that make up the custody application, as
well as shared helpers they build upon.

Authentication helpers in this package let extensions check who authorized
the current transaction without hard-coding one signature scheme.
*/
package x
