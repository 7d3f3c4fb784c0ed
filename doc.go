// Package iostub provides a queue-backed io.Reader for tests. A test pushes an
// ordered sequence of byte chunks and failures onto a Stub, hands the Stub to
// the code under test, and every Read drains that queue one outcome at a time,
// honouring the caller's buffer size the way a real stream delivers short reads.
package iostub
