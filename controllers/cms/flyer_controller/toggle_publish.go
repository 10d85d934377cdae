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

type toggleResult struct {
	flyer   models.Flyer
	message string
}

// TogglePublish godoc
// @Summary Publish or unpublish a flyer
// @Description Publishing requires the flyer to be active, have products and a cover image; the gate mirrors the dashboard checklist but the backend stays authoritative. Unpublishing has no precondition.
// @Tags CMS - Flyers
// @Accept json
// @Produce json
// @Param id path string true "Flyer ID"
// @Param body body models.TogglePublishRequest true "Target publish state"
// @Success 200 {object} models.ApiResponse
// @Failure 422 {object} models.ApiResponse "Flyer not eligible for publishing"
// @Router /api/v1/product-flyers/{id}/publish [patch]
func TogglePublish(c *gin.Context) {
	id := c.Param("id")

	var req models.TogglePublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request"))
		return
	}

	token := middleware.GetUpstreamToken(c)
	client := services.GetUpstreamClient()

	// Publishing is gated on a fresh snapshot; unpublishing never is.
	if *req.IsPublished {
		var data models.FlyerData
		if err := client.GetJSON(c.Request.Context(), "/product-flyers/"+id, nil, token, &data); err != nil {
			failUpstream(c, err)
			return
		}

		snapshot := services.SnapshotFromFlyer(data.Flyer)
		verdict := services.EvaluatePublish(snapshot)
		if !verdict.CanPublish {
			resp := models.ErrorResponse(c, verdict.Reason)
			resp.Data = gin.H{
				"eligibility": verdict,
				"checklist":   services.PublishChecklist(snapshot),
			}
			c.JSON(http.StatusUnprocessableEntity, resp)
			return
		}
	}

	// Coalesce duplicate submissions. The key includes the target value
	// so opposite directions never share a call, and the shared call is
	// detached from this request's context: an in-flight toggle is never
	// aborted by the caller that happened to lose the race.
	result, err, _ := toggleGroup.Do("publish:"+id+":"+strconv.FormatBool(*req.IsPublished), func() (any, error) {
		var data models.FlyerData
		message, err := client.SendJSON(
			context.WithoutCancel(c.Request.Context()),
			http.MethodPatch,
			"/product-flyers/"+id+"/publish",
			token,
			gin.H{"isPublished": *req.IsPublished},
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
	// The returned entity is the source of truth for the new state, not
	// the request body.
	utils.RewriteFlyer(&res.flyer)

	message := res.message
	if message == "" {
		message = "Flyer publish status updated"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, models.FlyerData{Flyer: res.flyer}))
}
