package flyer_controller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// ToggleActivate godoc
// @Summary Activate or deactivate a flyer
// @Description Independent of publish state; no precondition in either direction.
// @Tags CMS - Flyers
// @Accept json
// @Produce json
// @Param id path string true "Flyer ID"
// @Param body body models.ToggleActivateRequest true "Target active state"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/product-flyers/{id}/activate [patch]
func ToggleActivate(c *gin.Context) {
	id := c.Param("id")

	var req models.ToggleActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	token := middleware.GetUpstreamToken(c)
	client := services.GetUpstreamClient()

	result, err, _ := toggleGroup.Do("activate:"+id+":"+strconv.FormatBool(*req.IsActive), func() (any, error) {
		var data models.FlyerData
		message, err := client.SendJSON(
			context.WithoutCancel(c.Request.Context()),
			http.MethodPatch,
			"/product-flyers/"+id+"/activate",
			token,
			gin.H{"isActive": *req.IsActive},
			&data,
		)
		if err != nil {
			return nil, err
		}
		return toggleResult{flyer: data.Flyer, message: message}, nil
	})
	if err != nil {
		failUpstream(c, err)
		return
	}

	res := result.(toggleResult)
	utils.RewriteFlyer(&res.flyer)

	message := res.message
	if message == "" {
		message = "Flyer activation status updated"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, models.FlyerData{Flyer: res.flyer}))
}
