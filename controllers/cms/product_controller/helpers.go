package product_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

func failUpstream(c *gin.Context, err error) {
	status, resp := models.UpstreamFailure(c, err)
	if status == http.StatusUnauthorized {
		if sid, ok := middleware.GetSessionID(c); ok {
			_ = services.GetSessionService().DeleteSession(c.Request.Context(), sid)
		}
	}
	c.JSON(status, resp)
}
