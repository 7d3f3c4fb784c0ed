package iostub

import (
	"github.com/eapache/queue"
	"github.com/vlence/gossert"
)

// outcome is one queued read event: either a chunk of data or a failure.
type outcome struct {
	data []byte
	err  error
}

func (o *outcome) failed() bool {
	return o.err != nil
}

// readQueue is a FIFO of pending outcomes.
type readQueue struct {
	q *queue.Queue
}

func newReadQueue() *readQueue {
	return &readQueue{q: queue.New()}
}

// len returns the number of pending outcomes. A partially consumed chunk counts as one.
func (r *readQueue) len() int {
	return r.q.Length()
}

// buffered returns the number of pending data bytes.
func (r *readQueue) buffered() int {
	total := 0
	for i := range r.q.Length() {
		total += len(r.q.Get(i).(*outcome).data)
	}
	return total
}

func (r *readQueue) pushData(p []byte) {
	r.q.Add(&outcome{data: append([]byte{}, p...)})
}

func (r *readQueue) pushErr(err error) {
	gossert.Ok(err != nil, "iostub: queued failure has nil error")
	r.q.Add(&outcome{err: err})
}

// read consumes the front outcome into dst. A chunk longer than dst is trimmed
// in place so its unread suffix stays at the head of the queue.
// The queue must not be empty.
func (r *readQueue) read(dst []byte) (int, error) {
	gossert.Ok(r.q.Length() > 0, "iostub: read from empty queue")

	front := r.q.Peek().(*outcome)
	if front.failed() {
		r.q.Remove()
		return 0, front.err
	}

	n := copy(dst, front.data)
	if n < len(front.data) {
		front.data = front.data[n:]
		gossert.Ok(len(front.data) > 0, "iostub: requeued an empty remainder")
		return n, nil
	}

	r.q.Remove()
	return n, nil
}
