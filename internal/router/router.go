package router

import (
	"github.com/cb17225/huffman-compression/internal/handler"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	CodecHandler *handler.CodecHandler
}

func Register(r *gin.Engine, d Dependencies) {
	// 공용 라우트
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// v1 그룹
	v1 := r.Group("/api/v1")
	{
		v1.POST("/encode", d.CodecHandler.Encode)
		v1.POST("/decode", d.CodecHandler.Decode)
		v1.POST("/stats", d.CodecHandler.Stats)

		profiles := v1.Group("/profiles")
		{
			profiles.POST("", d.CodecHandler.SaveProfile)
			profiles.GET("", d.CodecHandler.ListProfiles)
			profiles.GET("/:name", d.CodecHandler.GetProfile)
			profiles.GET("/:name/codes", d.CodecHandler.ProfileCodes)
		}
	}
}
