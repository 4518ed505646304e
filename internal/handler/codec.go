package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cb17225/huffman-compression/internal/repo"
	"github.com/cb17225/huffman-compression/internal/service"
	"github.com/cb17225/huffman-compression/pkg/codec"
	"github.com/cb17225/huffman-compression/pkg/huffman"
)

type CodecHandler struct {
	svc *service.CodecService
}

func NewCodecHandler(s *service.CodecService) *CodecHandler {
	return &CodecHandler{svc: s}
}

// 요청/응답 (API 계약은 pkg/client 와 공유)
type EncodeReq struct {
	Text     string `json:"text"`
	Profile  string `json:"profile,omitempty"`
	Minimize *bool  `json:"minimize,omitempty"`
}

type EncodeResp struct {
	Data     []byte            `json:"data"`
	Bits     int               `json:"bits"`
	Weights  huffman.Weights   `json:"weights"`
	Minimize bool              `json:"minimize"`
	Codes    map[string]string `json:"codes"`
}

type DecodeReq struct {
	Data     []byte           `json:"data"`
	Profile  string           `json:"profile,omitempty"`
	Weights  *huffman.Weights `json:"weights,omitempty"`
	Minimize *bool            `json:"minimize,omitempty"`
}

type DecodeResp struct {
	Text string `json:"text"`
}

type StatsReq struct {
	Text string `json:"text"`
}

type ProfileReq struct {
	Name     string           `json:"name" binding:"required"`
	Text     string           `json:"text,omitempty"`
	Weights  *huffman.Weights `json:"weights,omitempty"`
	Minimize *bool            `json:"minimize,omitempty"`
}

func (h *CodecHandler) Encode(c *gin.Context) {
	var req EncodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Encode(c.Request.Context(), service.EncodeRequest{
		Text: req.Text, Profile: req.Profile, Minimize: req.Minimize,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, EncodeResp{
		Data:     res.Data,
		Bits:     res.Bits,
		Weights:  res.Weights,
		Minimize: res.Minimize,
		Codes:    codesJSON(res.Codes),
	})
}

func (h *CodecHandler) Decode(c *gin.Context) {
	var req DecodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	text, err := h.svc.Decode(c.Request.Context(), service.DecodeRequest{
		Data: req.Data, Profile: req.Profile, Weights: req.Weights, Minimize: req.Minimize,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, DecodeResp{Text: text})
}

func (h *CodecHandler) Stats(c *gin.Context) {
	var req StatsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, err := h.svc.Stats(req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *CodecHandler) SaveProfile(c *gin.Context) {
	var req ProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.svc.SaveProfile(c.Request.Context(), req.Name, req.Text, req.Weights, req.Minimize)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *CodecHandler) GetProfile(c *gin.Context) {
	p, err := h.svc.Profile(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CodecHandler) ListProfiles(c *gin.Context) {
	list, err := h.svc.Profiles(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CodecHandler) ProfileCodes(c *gin.Context) {
	codes, err := h.svc.Codes(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, codesJSON(codes))
}

// 키는 심볼 번호 문자열 ("65": "1")
func codesJSON(t huffman.CodeTable) map[string]string {
	out := make(map[string]string, len(t))
	for _, s := range t.Symbols() {
		out[strconv.Itoa(int(s))] = t[s]
	}
	return out
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, codec.ErrUnencodable), errors.Is(err, codec.ErrTruncated), errors.Is(err, huffman.ErrInvalidBit):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
