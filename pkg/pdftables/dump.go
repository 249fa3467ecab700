package pdftables

import "io"

// chunkSize is the fixed size of chunks yielded by Chunks.Next.
const chunkSize = 4096

// Chunks is a lazy, single-pass sequence of response body chunks.
// Consuming it is destructive: it mirrors a one-shot network stream and
// cannot be restarted. The underlying body is closed once Next returns
// io.EOF or an error; Close releases it early.
type Chunks struct {
	body io.ReadCloser
	done bool
}

// Next returns the next chunk of at most 4096 bytes. The returned slice
// is only valid until the following call. It returns io.EOF once the
// stream is exhausted.
func (c *Chunks) Next() ([]byte, error) {
	if c.done {
		return nil, io.EOF
	}

	buf := make([]byte, chunkSize)
	n, err := io.ReadFull(c.body, buf)
	switch err {
	case nil:
		return buf[:n], nil
	case io.ErrUnexpectedEOF:
		c.finish()
		return buf[:n], nil
	case io.EOF:
		c.finish()
		return nil, io.EOF
	default:
		c.finish()
		return nil, err
	}
}

// Close releases the underlying stream without consuming it.
func (c *Chunks) Close() error {
	if c.done {
		return nil
	}
	return c.finish()
}

func (c *Chunks) finish() error {
	c.done = true
	return c.body.Close()
}
