/*
Package cash defines the ledger transfer primitive: wallets holding a
balance of the value unit, and a send message moving value between
accounts.

There is no logic in the balances, except that they may never go below a
configured floor. Depositing into a custody vault is a plain send to the
vault address, so this package is all a depositor ever touches.
*/
package cash
