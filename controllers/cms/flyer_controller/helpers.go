package flyer_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"
)

// toggleGroup coalesces concurrent publish/activate toggles so a double
// submission produces a single upstream PATCH. Keys are per flyer, per
// action, per target value: opposite directions never share a response.
var toggleGroup singleflight.Group

func failUpstream(c *gin.Context, err error) {
	status, resp := models.UpstreamFailure(c, err)
	if status == http.StatusUnauthorized {
		if sid, ok := middleware.GetSessionID(c); ok {
			_ = services.GetSessionService().DeleteSession(c.Request.Context(), sid)
		}
	}
	c.JSON(status, resp)
}
