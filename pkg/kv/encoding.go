package kv

import (
	"lintang/wayfinder/pkg/datastructure"

	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"
)

// GraphBlob representasi serializable dari road network graph, buat
// disimpan di pebble.
type GraphBlob struct {
	Nodes   []datastructure.Node
	Edges   []datastructure.Edge
	SavedAt int64
}

func Encode(blob GraphBlob) ([]byte, error) {
	return binary.Marshal(&blob)
}

func Decode(bb []byte) (GraphBlob, error) {
	var blob GraphBlob
	err := binary.Unmarshal(bb, &blob)
	return blob, err
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}

	return bb, nil
}
