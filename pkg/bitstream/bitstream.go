// Package bitstream 은 '0'/'1' 비트열과 바이트 사이를 MSB-first 로 변환한다.
// 마지막 바이트의 남는 비트는 0으로 채운다.
package bitstream

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"
)

var ErrInvalidBit = errors.New("bitstream: invalid bit")

// Writer 는 코드 단위로 비트를 받아 out 에 바이트로 내보낸다.
type Writer struct {
	bw   *bitio.Writer
	bits int
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(out)}
}

// WriteCode 는 '0'/'1' 문자열 하나를 그대로 쓴다. 빈 코드는 아무것도 쓰지 않는다.
func (w *Writer) WriteCode(code string) error {
	for i := 0; i < len(code); i++ {
		var bit bool
		switch code[i] {
		case '0':
		case '1':
			bit = true
		default:
			return fmt.Errorf("%w %q at %d", ErrInvalidBit, code[i], w.bits)
		}
		if err := w.bw.WriteBool(bit); err != nil {
			return err
		}
		w.bits++
	}
	return nil
}

// Bits 는 지금까지 쓴 비트 수 (패딩 제외).
func (w *Writer) Bits() int { return w.bits }

// Close 는 남은 비트를 0으로 채워 내보낸다. 하위 writer 는 닫지 않는다.
func (w *Writer) Close() error { return w.bw.Close() }

// Pack 은 비트열 전체를 바이트로 묶는다.
func Pack(bits string) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	if err := w.WriteCode(bits); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack 은 모든 바이트의 모든 비트를 MSB-first 로 풀어낸다 (패딩 포함).
func Unpack(data []byte) (string, error) {
	br := bitio.NewReader(bytes.NewReader(data))
	var sb strings.Builder
	sb.Grow(len(data) * 8)
	for i := 0; i < len(data)*8; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			return "", fmt.Errorf("read bit %d: %w", i, err)
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String(), nil
}
