// Package codec 는 텍스트 ↔ 압축 바이트 파이프라인.
// 텍스트의 각 바이트 코드를 이어 붙이고 끝에 종료 심볼 코드를 붙인 뒤 MSB-first 로 묶는다.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cb17225/huffman-compression/pkg/bitstream"
	"github.com/cb17225/huffman-compression/pkg/huffman"
)

var (
	ErrUnencodable = errors.New("codec: symbol has no code")
	ErrTruncated   = errors.New("codec: bitstream ended before terminator")
)

// Codec 은 한 번 빌드된 트리와 코드 테이블을 들고 있다. 빌드 후에는 읽기 전용.
type Codec struct {
	root     *huffman.Node
	codes    huffman.CodeTable
	minimize bool
}

func New(w huffman.Weights, minimize bool) (*Codec, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	root := huffman.BuildTree(w, minimize)
	return &Codec{root: root, codes: huffman.AssignCodes(root), minimize: minimize}, nil
}

func (c *Codec) Root() *huffman.Node      { return c.root }
func (c *Codec) Codes() huffman.CodeTable { return c.codes }
func (c *Codec) Minimize() bool           { return c.minimize } // 트리를 만들 때 쓴 정책

// EncodeBits 는 text 의 비트열을 돌려준다. 종료 심볼 코드가 마지막에 붙는다.
// 종료 심볼만 있는 트리는 코드 길이가 0이라 빈 비트열이 된다.
func (c *Codec) EncodeBits(text []byte) (string, error) {
	var sb strings.Builder
	for i, b := range text {
		code, ok := c.codes[b]
		if !ok || b == huffman.Terminator {
			return "", fmt.Errorf("%w: 0x%02x at offset %d", ErrUnencodable, b, i)
		}
		sb.WriteString(code)
	}
	sb.WriteString(c.codes[huffman.Terminator])
	return sb.String(), nil
}

// Encode 는 압축 바이트와 실제 비트 수(패딩 제외)를 돌려준다.
func (c *Codec) Encode(text []byte) ([]byte, int, error) {
	bits, err := c.EncodeBits(text)
	if err != nil {
		return nil, 0, err
	}
	packed, err := bitstream.Pack(bits)
	if err != nil {
		return nil, 0, err
	}
	return packed, len(bits), nil
}

// DecodeBits 는 종료 심볼이 나올 때까지 DecodeOne 을 반복한다. 그 뒤의 비트(패딩)는 무시.
func (c *Codec) DecodeBits(bits string) ([]byte, error) {
	if c.root.IsLeaf() {
		return []byte{}, nil
	}
	out := make([]byte, 0, len(bits)/4)
	pos := 0
	for {
		sym, n, err := huffman.DecodeOne(c.root, bits[pos:])
		if errors.Is(err, huffman.ErrIncomplete) {
			return out, fmt.Errorf("%w: %d symbols, %d bits consumed (%d pending)", ErrTruncated, len(out), pos, n)
		}
		if err != nil {
			return out, fmt.Errorf("bit %d: %w", pos, err)
		}
		pos += n
		if sym == huffman.Terminator {
			return out, nil
		}
		out = append(out, sym)
	}
}

func (c *Codec) Decode(data []byte) ([]byte, error) {
	bits, err := bitstream.Unpack(data)
	if err != nil {
		return nil, err
	}
	return c.DecodeBits(bits)
}
