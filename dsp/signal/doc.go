// Package signal provides streaming test-signal sources that fill caller
// buffers in place, for feeding real-time processors block by block.
package signal
