package tickloop

import "github.com/eapache/queue"

type (
	// Channel is an unbounded FIFO buffer for passing values between
	// logically concurrent tasks. Send appends and never blocks or fails;
	// TryRecv removes the oldest value and never suspends the caller. For
	// any sequence of sends v1..vn with no intervening receives, a matching
	// sequence of TryRecv calls yields v1..vn in that order, then absence.
	//
	// A Channel assumes single-threaded interleaved access: sender and
	// receiver are just two holders of the same buffer in one thread of
	// control. It is NOT safe for use from multiple goroutines.
	Channel[T any] struct {
		buf *queue.Queue
	}

	// Recv is a [Future] resolving to the next value received from a
	// [Channel]; see [Channel.Recv]. Each pending poll attempts one
	// non-blocking receive. Once resolved it has repeatable readiness,
	// returning the same value on every later poll; the value is its own,
	// taken off the buffer, and is never handed to another receiver.
	Recv[T any] struct {
		ch    *Channel[T]
		value T
		ready bool
	}
)

// NewChannel returns an empty Channel.
func NewChannel[T any]() *Channel[T] {
	return &Channel[T]{buf: queue.New()}
}

// Send appends v to the end of the buffer. There is no capacity bound; Send
// never blocks and never fails.
func (x *Channel[T]) Send(v T) {
	x.buf.Add(v)
}

// TryRecv removes and returns the earliest-sent value still in the buffer,
// or reports absence if the buffer is empty. It always returns immediately,
// unlike a receive on a true async channel.
func (x *Channel[T]) TryRecv() (T, bool) {
	if x.buf.Length() == 0 {
		var zero T
		return zero, false
	}
	return x.buf.Remove().(T), true
}

// Len returns the number of buffered values.
func (x *Channel[T]) Len() int {
	return x.buf.Length()
}

// Recv returns a future resolving to the next value sent on the channel,
// making receives composable with [Timeout], [Select] and [BlockOn]. The
// future competes with direct TryRecv calls and with other Recv futures in
// poll order; the channel stays strictly FIFO across all of them.
func (x *Channel[T]) Recv() *Recv[T] {
	return &Recv[T]{ch: x}
}

// Poll takes the oldest buffered value if one is available.
func (x *Recv[T]) Poll() Poll[T] {
	if !x.ready {
		v, ok := x.ch.TryRecv()
		if !ok {
			return Pending[T]()
		}
		x.value = v
		x.ready = true
	}
	return Ready(x.value)
}
