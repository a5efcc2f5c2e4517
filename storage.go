package layout

import (
	"go.uber.org/zap"
)

// FromStorage builds trees from a stored layout (JSON array of element records). A layout which can't be
// decoded is logged and gives an empty tree, so a broken layout never blocks the caller.
func FromStorage(data string, opts ...Option) []*Node {
	b := NewBuilder(opts...)

	elements, err := DecodeLayout([]byte(data))
	if err != nil {
		b.log.Error("unable to read stored layout", zap.Error(err))
		return []*Node{}
	}

	return b.BuildTree(elements)
}
