package flyer_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/config"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// UpdateFlyer godoc
// @Summary Update a flyer
// @Description Accepts JSON, or multipart when a replacement cover image is attached.
// @Tags CMS - Flyers
// @Accept json
// @Produce json
// @Param id path string true "Flyer ID"
// @Param flyer body models.UpdateFlyerRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/product-flyers/{id} [put]
func UpdateFlyer(c *gin.Context) {
	id := c.Param("id")
	token := middleware.GetUpstreamToken(c)
	client := services.GetUpstreamClient()

	var data models.FlyerData
	var message string

	if c.ContentType() == "multipart/form-data" {
		fields := utils.CollectFormFields(c, "title", "description", "category", "brand", "publishDate", "expiryDate", "coverImage")

		if fh, err := c.FormFile("coverImage"); err == nil {
			if err := services.ValidateImageFile(fh.Header.Get("Content-Type"), fh.Size, config.MaxUploadMB); err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
				return
			}
			file, err := services.FileFromHeader(fh)
			if err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
				return
			}
			fields["coverImage"] = file
		}

		body, contentType, err := services.BuildUploadBody(fields, token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build upload request"))
			return
		}

		message, err = client.SendRaw(c.Request.Context(), http.MethodPut, "/product-flyers/"+id, token, body, contentType, &data)
		if err != nil {
			failUpstream(c, err)
			return
		}
	} else {
		var req models.UpdateFlyerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}

		var err error
		message, err = client.SendJSON(c.Request.Context(), http.MethodPut, "/product-flyers/"+id, token, req, &data)
		if err != nil {
			failUpstream(c, err)
			return
		}
	}

	utils.RewriteFlyer(&data.Flyer)
	if message == "" {
		message = "Flyer updated successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, data))
}
