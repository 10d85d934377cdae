package flyer_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/gin-gonic/gin"
)

// GetEligibility godoc
// @Summary Publish-eligibility of a flyer
// @Description Returns the verdict (first unmet condition in priority order: active, products, cover image) plus the full checklist so the dashboard can render every unmet condition.
// @Tags CMS - Flyers
// @Produce json
// @Param id path string true "Flyer ID"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/product-flyers/{id}/eligibility [get]
func GetEligibility(c *gin.Context) {
	id := c.Param("id")

	var data models.FlyerData
	err := services.GetUpstreamClient().GetJSON(c.Request.Context(), "/product-flyers/"+id, nil, middleware.GetUpstreamToken(c), &data)
	if err != nil {
		failUpstream(c, err)
		return
	}

	snapshot := services.SnapshotFromFlyer(data.Flyer)
	verdict := services.EvaluatePublish(snapshot)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Eligibility computed", gin.H{
		"canPublish": verdict.CanPublish,
		"reason":     verdict.Reason,
		"checklist":  services.PublishChecklist(snapshot),
	}))
}
