package memory

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnmapped = errors.New("unmapped")

// fakeMemory maps [base, base+len(data)) and fails any word read outside it.
type fakeMemory struct {
	base  uint64
	data  []byte
	reads []uint64
}

func (m *fakeMemory) ReadWord(addr uint64) ([WORD_SIZE]byte, error) {
	m.reads = append(m.reads, addr)
	var word [WORD_SIZE]byte
	if addr < m.base || addr+WORD_SIZE > m.base+uint64(len(m.data)) {
		return word, errUnmapped
	}
	copy(word[:], m.data[addr-m.base:])
	return word, nil
}

func TestReadCStringStopsAtTerminator(t *testing.T) {
	mem := &fakeMemory{base: 0x1000, data: []byte("/etc/hostname\x00garbage........")}
	r := NewReader(mem, 0)

	got := r.ReadCString(0x1000)

	assert.Equal(t, "/etc/hostname", string(got))
	// 13 个字节 + 结束符 只需要两个字
	assert.Equal(t, []uint64{0x1000, 0x1008}, mem.reads)
}

func TestReadCStringTerminatorInFirstByte(t *testing.T) {
	mem := &fakeMemory{base: 0x1000, data: make([]byte, 16)}
	r := NewReader(mem, 0)

	got := r.ReadCString(0x1000)

	assert.Empty(t, got)
	assert.Len(t, mem.reads, 1)
}

func TestReadCStringFailureAfterWholeWords(t *testing.T) {
	for k := 0; k <= 3; k++ {
		data := []byte(strings.Repeat("abcdefgh", k))
		mem := &fakeMemory{base: 0x2000, data: data}
		r := NewReader(mem, 0)

		got := r.ReadCString(0x2000)

		assert.Equal(t, string(data), string(got), "k=%d", k)
		assert.Len(t, mem.reads, k+1, "k=%d", k)
	}
}

func TestReadCStringUnmappedAddress(t *testing.T) {
	mem := &fakeMemory{base: 0x2000, data: []byte("abc\x00\x00\x00\x00\x00")}
	r := NewReader(mem, 0)

	assert.Empty(t, r.ReadCString(0))
}

func TestReadCStringLittleEndianWord(t *testing.T) {
	// 0x0000006f6c6c6568 在小端序下是 "hello"
	words := WordReaderFunc(func(addr uint64) ([WORD_SIZE]byte, error) {
		return [WORD_SIZE]byte{'h', 'e', 'l', 'l', 'o', 0, 'x', 'y'}, nil
	})
	r := NewReader(words, 0)

	assert.Equal(t, "hello", string(r.ReadCString(0x10)))
}

func TestReadCStringLimit(t *testing.T) {
	words := WordReaderFunc(func(addr uint64) ([WORD_SIZE]byte, error) {
		return [WORD_SIZE]byte{'a', 'a', 'a', 'a', 'a', 'a', 'a', 'a'}, nil
	})
	r := NewReader(words, 20)

	got := r.ReadCString(0x10)

	require.Len(t, got, 20)
	assert.Equal(t, strings.Repeat("a", 20), string(got))
}

func TestNewReaderNegativeLimit(t *testing.T) {
	r := NewReader(&fakeMemory{}, -1)
	assert.Equal(t, 0, r.limit)
}

func TestReadLimitFor(t *testing.T) {
	assert.Equal(t, DEFAULT_READ_LIMIT, ReadLimitFor(64))
	assert.Equal(t, 5000*4+1, ReadLimitFor(5000))
}
