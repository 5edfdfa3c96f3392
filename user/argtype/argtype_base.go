package argtype

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	CHARSET_LATIN1 uint32 = iota
	CHARSET_UTF8
)

const ELLIPSIS = "..."

// 整数 原样输出寄存器的无符号十进制值
// 32 位的 int 参数高位为 0 例如 AT_FDCWD 显示为 4294967196
type ARG_NUM struct {
	ArgType
}

func (this *ARG_NUM) Parse(value uint64) string {
	return strconv.FormatUint(value, 10)
}

// 地址 不解引用
type ARG_PTR struct {
	ArgType
}

func (this *ARG_PTR) Parse(value uint64) string {
	return fmt.Sprintf("0x%x", value)
}

// 以 \0 结尾的字符串 通过 StringReader 从目标进程读取
type ARG_STRING struct {
	ArgType
	Reader   StringReader
	StrLimit int
	Charset  uint32
}

func (this *ARG_STRING) Parse(value uint64) string {
	raw := this.Reader.ReadCString(value)
	runes := DecodeChars(raw, this.Charset)
	if len(runes) <= this.StrLimit {
		return strconv.Quote(string(runes))
	}
	return strconv.Quote(string(runes[:this.StrLimit])) + ELLIPSIS
}

// DecodeChars turns raw bytes into characters. With CHARSET_LATIN1 every byte
// is one character. With CHARSET_UTF8 valid sequences become one character and
// each byte of an invalid sequence falls back to its Latin-1 character.
func DecodeChars(raw []byte, charset uint32) []rune {
	runes := make([]rune, 0, len(raw))
	if charset != CHARSET_UTF8 {
		for _, b := range raw {
			runes = append(runes, rune(b))
		}
		return runes
	}
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r == utf8.RuneError && size <= 1 {
			r = rune(raw[0])
			size = 1
		}
		runes = append(runes, r)
		raw = raw[size:]
	}
	return runes
}

func ParseCharset(name string) (uint32, error) {
	switch strings.ToLower(name) {
	case "", "latin1":
		return CHARSET_LATIN1, nil
	case "utf8", "utf-8":
		return CHARSET_UTF8, nil
	}
	return 0, fmt.Errorf("unsupported charset:%s", name)
}
