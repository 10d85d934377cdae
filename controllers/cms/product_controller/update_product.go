package product_controller

import (
	"net/http"

	"github.com/Fletushka-Katalog/fletushka-gateway/config"
	"github.com/Fletushka-Katalog/fletushka-gateway/middleware"
	"github.com/Fletushka-Katalog/fletushka-gateway/models"
	"github.com/Fletushka-Katalog/fletushka-gateway/services"
	"github.com/Fletushka-Katalog/fletushka-gateway/utils"
	"github.com/gin-gonic/gin"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Accepts JSON, or multipart when a replacement image is attached.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.ProductData}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/products/{id} [put]
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	token := middleware.GetUpstreamToken(c)
	client := services.GetUpstreamClient()

	var data models.ProductData
	var message string

	if c.ContentType() == "multipart/form-data" {
		fields := utils.CollectFormFields(c,
			"name", "details", "shifra", "price", "quantity",
			"category", "brand", "productFlyer", "pageNumber", "tags", "specifications", "isActive")

		if fh, err := c.FormFile("image"); err == nil {
			if err := services.ValidateImageFile(fh.Header.Get("Content-Type"), fh.Size, config.MaxUploadMB); err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
				return
			}
			file, err := services.FileFromHeader(fh)
			if err != nil {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read uploaded file"))
				return
			}
			fields["image"] = file
		}

		body, contentType, err := services.BuildUploadBody(fields, token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build upload request"))
			return
		}

		message, err = client.SendRaw(c.Request.Context(), http.MethodPut, "/products/"+id, token, body, contentType, &data)
		if err != nil {
			failUpstream(c, err)
			return
		}
	} else {
		var req models.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}

		var err error
		message, err = client.SendJSON(c.Request.Context(), http.MethodPut, "/products/"+id, token, req, &data)
		if err != nil {
			failUpstream(c, err)
			return
		}
	}

	utils.RewriteProduct(&data.Product)
	if message == "" {
		message = "Product updated successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, data))
}
