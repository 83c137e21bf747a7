package util

import (
	"encoding/hex"
	"strings"
)

// Chunk
func Chunk[T any](collection []T, size int) [][]T {
	ret := make([][]T, 0, len(collection)/size+1)
	for i := 0; i < len(collection); i = i + size {
		var bound int
		if i+size < len(collection) {
			bound = i + size
		} else {
			bound = len(collection)
		}
		ret = append(ret, collection[i:bound])
	}
	return ret
}

// HexToBytes decodes a hex string, ignoring any whitespace between digits.
func HexToBytes(s string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	return hex.DecodeString(clean)
}
