// Package shell implements the interactive hsmanager prompt.
//
// The shell is a small state machine driven by one line of input at a time:
//
//	StateMain     the dispatcher; recognizes help, version, author, exit,
//	              clear and server-edit. Anything else prints "error".
//	StateInspect  entered with server-edit. The profiles are loaded fresh
//	              from the store and every line is looked up as a profile
//	              name. "back" returns to StateMain when enabled.
//
// Each state has its own commands.Registry. Input is matched against it as a
// whole, trimmed, case-sensitive line.
//
// Lines come from a LineReader, which *readline.Instance satisfies. Tests
// drive the shell with a scripted reader instead of a terminal.
//
// The shell runs on the caller's goroutine and owns the registry it loads;
// nothing in this package is safe for concurrent use.
package shell
