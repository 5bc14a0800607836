/*
Package custodytest provides mock implementations of the core interfaces,
to be used when testing extensions and applications.
*/
package custodytest
