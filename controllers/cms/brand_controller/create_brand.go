package brand_controller

import (
	"net/http"

	lookup_cache "github.com/Fletushka-Katalog/fletushka-gateway/cache"
	"github.com/Fletushka-Katalog/fletushka-gateway/config"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// CreateBrand godoc
// @Summary Create a brand
// @Description Accepts JSON, or multipart when a logo file is attached. The file must be an image within the configured size cap.
// @Tags CMS - Brands
// @Accept json
// @Produce json
// @Param brand body models.CreateBrandRequest true "Brand fields"
// @Success 201 {object} models.ApiResponse{data=models.BrandData}
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/brands [post]
func CreateBrand(c *gin.Context) {
	token := middleware.GetUpstreamToken(c)
	client := services.GetUpstreamClient()

	var data models.BrandData
	var message string

	if c.ContentType() == "multipart/form-data" {
		fields := utils.CollectFormFields(c, "name", "description", "website", "country", "founded")

		if fh, err := c.FormFile("logo"); err == nil {
			if err := services.ValidateImageFile(fh.Header.Get("Content-Type"), fh.Size, config.MaxUploadMB); err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
				return
			}
			file, err := services.FileFromHeader(fh)
			if err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
				return
			}
			fields["logo"] = file
		}

		body, contentType, err := services.BuildUploadBody(fields, token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build upload request"))
			return
		}

		message, err = client.SendRaw(c.Request.Context(), http.MethodPost, "/brands", token, body, contentType, &data)
		if err != nil {
			failUpstream(c, err)
			return
		}
	} else {
		var req models.CreateBrandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}

		var err error
		message, err = client.SendJSON(c.Request.Context(), http.MethodPost, "/brands", token, req, &data)
		if err != nil {
			failUpstream(c, err)
			return
		}
	}

	lookup_cache.InvalidateBrands()
	utils.RewriteBrand(&data.Brand)
	if message == "" {
		message = "Brand created successfully"
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, message, data))
}
