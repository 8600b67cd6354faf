package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack encodes results with the same shape as JSON. One file is a map,
// several are an array.
func Msgpack(w io.Writer, outputs ...ResultOutput) error {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	if len(outputs) == 1 {
		return enc.Encode(outputs[0])
	}
	if outputs == nil {
		outputs = []ResultOutput{}
	}
	return enc.Encode(outputs)
}
