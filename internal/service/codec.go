package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/cb17225/huffman-compression/internal/model"
	"github.com/cb17225/huffman-compression/internal/repo"
	"github.com/cb17225/huffman-compression/pkg/codec"
	"github.com/cb17225/huffman-compression/pkg/huffman"
	"github.com/cb17225/huffman-compression/pkg/logger"
	"github.com/cb17225/huffman-compression/pkg/weights"
)

var ErrInvalidInput = errors.New("invalid input")

type CodecService struct {
	repo     repo.WeightRepo
	logger   logger.Logger
	minimize bool // 요청에 값이 없을 때
}

func NewCodecService(r repo.WeightRepo, l logger.Logger, defaultMinimize bool) *CodecService {
	return &CodecService{repo: r, logger: l, minimize: defaultMinimize}
}

/*** ---------- 프로필 ---------- ***/

// SaveProfile 은 weights 가 있으면 그대로, 없으면 text 를 세어서 저장한다.
func (s *CodecService) SaveProfile(ctx context.Context, name, text string, w *huffman.Weights, minimize *bool) (*model.Profile, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: profile name is required", ErrInvalidInput)
	}
	p := &model.Profile{Name: name, Minimize: s.pick(minimize), UpdatedAt: time.Now().UTC()}
	if w != nil {
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		p.Weights = *w
		p.Weights[huffman.Terminator] = max(p.Weights[huffman.Terminator], 1)
	} else {
		counted, err := weights.Count(strings.NewReader(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		p.Weights = counted
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Infof("profile saved: %s (minimize=%t)", p.Name, p.Minimize)
	return p, nil
}

func (s *CodecService) Profile(ctx context.Context, name string) (*model.Profile, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *CodecService) Profiles(ctx context.Context) ([]*model.Profile, error) {
	return s.repo.List(ctx)
}

// Codes 는 프로필로 만든 트리의 코드 테이블.
func (s *CodecService) Codes(ctx context.Context, name string) (huffman.CodeTable, error) {
	p, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	c, err := codec.New(p.Weights, p.Minimize)
	if err != nil {
		return nil, err
	}
	return c.Codes(), nil
}

/*** ---------- 인코딩 / 디코딩 ---------- ***/

type EncodeRequest struct {
	Text     string
	Profile  string // 비어 있으면 text 에서 가중치를 센다
	Minimize *bool  // Profile 이 있으면 무시
}

type EncodeResult struct {
	Data     []byte
	Bits     int
	Weights  huffman.Weights
	Minimize bool
	Codes    huffman.CodeTable
}

func (s *CodecService) Encode(ctx context.Context, req EncodeRequest) (*EncodeResult, error) {
	w, minimize, err := s.resolve(ctx, req.Profile, nil, req.Minimize, req.Text)
	if err != nil {
		return nil, err
	}
	c, err := codec.New(w, minimize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	data, bits, err := c.Encode([]byte(req.Text))
	if err != nil {
		s.logger.Errorf("encode failed: %v", err)
		return nil, err
	}
	s.logger.Debugf("tree %s", huffman.Dump(c.Root()))
	s.logger.Infof("encoded %d bytes into %d bits (%d codes)", len(req.Text), bits, len(c.Codes()))
	return &EncodeResult{Data: data, Bits: bits, Weights: w, Minimize: c.Minimize(), Codes: c.Codes()}, nil
}

type DecodeRequest struct {
	Data     []byte
	Profile  string
	Weights  *huffman.Weights // Profile 이 없을 때 필수
	Minimize *bool
}

func (s *CodecService) Decode(ctx context.Context, req DecodeRequest) (string, error) {
	if req.Profile == "" && req.Weights == nil {
		return "", fmt.Errorf("%w: profile or weights is required", ErrInvalidInput)
	}
	w, minimize, err := s.resolve(ctx, req.Profile, req.Weights, req.Minimize, "")
	if err != nil {
		return "", err
	}
	c, err := codec.New(w, minimize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	out, err := c.Decode(req.Data)
	if err != nil {
		s.logger.Errorf("decode failed after %d symbols: %v", len(out), err)
		return "", err
	}
	s.logger.Infof("decoded %d bytes into %d symbols", len(req.Data), len(out))
	return string(out), nil
}

// resolve 는 프로필 > 직접 준 가중치 > 텍스트 집계 순으로 가중치를 고른다.
func (s *CodecService) resolve(ctx context.Context, profile string, w *huffman.Weights, minimize *bool, text string) (huffman.Weights, bool, error) {
	if profile != "" {
		p, err := s.repo.FindByName(ctx, profile)
		if err != nil {
			return huffman.Weights{}, false, fmt.Errorf("profile %q: %w", profile, err)
		}
		return p.Weights, p.Minimize, nil
	}
	if w != nil {
		return *w, s.pick(minimize), nil
	}
	counted, err := weights.Count(strings.NewReader(text))
	if err != nil {
		return huffman.Weights{}, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return counted, s.pick(minimize), nil
}

func (s *CodecService) pick(minimize *bool) bool {
	if minimize == nil {
		return s.minimize
	}
	return *minimize
}

/*** ---------- 통계 ---------- ***/

type Stats struct {
	RawBits     int     `json:"rawBits"`
	HuffmanBits int     `json:"huffmanBits"`
	Ratio       float64 `json:"ratio"`
	ZstdBytes   int     `json:"zstdBytes"`
	Symbols     int     `json:"symbols"`
}

// Stats 는 text 자체 가중치로 압축했을 때의 크기와 zstd 기준값을 비교한다.
func (s *CodecService) Stats(text string) (*Stats, error) {
	w, err := weights.Count(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	c, err := codec.New(w, true)
	if err != nil {
		return nil, err
	}
	bits, err := c.EncodeBits([]byte(text))
	if err != nil {
		return nil, err
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	defer enc.Close()
	z := enc.EncodeAll([]byte(text), nil)

	st := &Stats{
		RawBits:     len(text) * 8,
		HuffmanBits: len(bits),
		ZstdBytes:   len(z),
		Symbols:     len(c.Codes()),
	}
	if st.RawBits > 0 {
		st.Ratio = float64(st.HuffmanBits) / float64(st.RawBits)
	}
	return st, nil
}
