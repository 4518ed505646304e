package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string // 비어 있으면 인메모리 저장소
	Minimize    bool   // 요청에 값이 없을 때 기본 minimize 정책
	ServerURL   string // profile_job 이 붙는 서버
	Debug       bool
}

func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Minimize:    getbool("HUFF_MINIMIZE", true),
		ServerURL:   getenv("HUFF_SERVER_URL", "http://localhost:8080"),
		Debug:       getbool("HUFF_DEBUG", false),
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
