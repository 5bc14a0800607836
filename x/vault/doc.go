/*
Package vault implements threshold-authorization custody: a shared fund
controlled by a fixed set of owners, where any outbound transfer needs a
minimum number of distinct owner approvals before value moves.

A vault holds the owner set, the approval threshold and a proposal sequence
counter, and its deterministic address doubles as the custody account that
deposits flow into. A spend proposal is scoped to exactly one vault and
collects owner approvals until it is executed or cancelled, both of which
are terminal.
*/
package vault
