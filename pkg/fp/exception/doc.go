// Package exception models structured, causally chained errors.
//
// An Exception carries a message template with {{token}} placeholders, the
// token values, a context bag that never reaches the message, and the error
// that caused it. Chains can mix Exceptions and plain errors; a plain error
// always ends the chain.
//
//	err := exception.CausedBy(io.ErrUnexpectedEOF,
//		"Failed to read {{file}}", exception.Tokens{"file": "a.json"},
//		exception.Context{"offset": 120})
//	exception.ChainString(err)
//	// Exception: Failed to read a.json
//	//	- Error: unexpected EOF
//
// Snapshot flattens a chain into an ErrorSnapshot, a plain record that can be
// logged or sent across a process boundary, and Log writes it to an apex/log
// logger.
package exception
