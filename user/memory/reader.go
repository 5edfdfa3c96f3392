package memory

import (
	"encoding/binary"
	"unicode/utf8"
)

const WORD_SIZE = 8

// 单次最多读取的字节数 防止目标进程内存中一直没有 \0
const DEFAULT_READ_LIMIT = 4096

// ReadLimitFor returns a read cap large enough to tell whether a string has
// more than strLimit characters in any supported charset.
func ReadLimitFor(strLimit int) int {
	return max(DEFAULT_READ_LIMIT, strLimit*utf8.UTFMax+1)
}

// WordReader reads one word of the traced process' memory.
type WordReader interface {
	ReadWord(addr uint64) ([WORD_SIZE]byte, error)
}

type WordReaderFunc func(addr uint64) ([WORD_SIZE]byte, error)

func (f WordReaderFunc) ReadWord(addr uint64) ([WORD_SIZE]byte, error) {
	return f(addr)
}

// Reader is the only place that does address arithmetic on the traced
// process' address space.
type Reader struct {
	words WordReader
	limit int
}

// NewReader returns a Reader on top of words. limit caps the bytes returned by
// ReadCString, 0 disables the cap.
func NewReader(words WordReader, limit int) *Reader {
	if limit < 0 {
		limit = 0
	}
	return &Reader{words: words, limit: limit}
}

// ReadCString reads a NUL terminated byte string starting at addr.
// A failing word read ends the string: whatever was read before is returned
// and the failure is not reported.
func (this *Reader) ReadCString(addr uint64) []byte {
	var result []byte
	for {
		word, err := this.words.ReadWord(addr)
		if err != nil {
			return result
		}
		// 按小端序逐字节扫描 遇到 0 即结束
		value := binary.LittleEndian.Uint64(word[:])
		for i := 0; i < WORD_SIZE; i++ {
			b := byte(value >> (8 * i))
			if b == 0 {
				return result
			}
			result = append(result, b)
			if this.limit > 0 && len(result) >= this.limit {
				return result
			}
		}
		addr += WORD_SIZE
	}
}
