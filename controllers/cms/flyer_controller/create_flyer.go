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

// CreateFlyer godoc
// @Summary Create a flyer
// @Description Accepts JSON, or multipart when a cover image file is attached. The file must be an image within the configured size cap.
// @Tags CMS - Flyers
// @Accept json
// @Produce json
// @Param flyer body models.CreateFlyerRequest true "Flyer fields"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/product-flyers [post]
func CreateFlyer(c *gin.Context) {
	token := middleware.GetUpstreamToken(c)
	client := services.GetUpstreamClient()

	var data models.FlyerData
	var message string

	if c.ContentType() == "multipart/form-data" {
		fields := utils.CollectFormFields(c, "title", "description", "category", "brand", "publishDate", "expiryDate")

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

		message, err = client.SendRaw(c.Request.Context(), http.MethodPost, "/product-flyers", token, body, contentType, &data)
		if err != nil {
			failUpstream(c, err)
			return
		}
	} else {
		var req models.CreateFlyerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}

		var err error
		message, err = client.SendJSON(c.Request.Context(), http.MethodPost, "/product-flyers", token, req, &data)
		if err != nil {
			failUpstream(c, err)
			return
		}
	}

	utils.RewriteFlyer(&data.Flyer)
	if message == "" {
		message = "Flyer created successfully"
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, message, data))
}
