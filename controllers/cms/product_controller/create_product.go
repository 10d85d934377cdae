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

// CreateProduct godoc
// @Summary Create a product
// @Description Accepts JSON, or multipart when a product image file is attached. The file must be an image within the configured size cap.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param product body models.CreateProductRequest true "Product fields"
// @Success 201 {object} models.ApiResponse{data=models.ProductData}
// @Failure 400 {object} models.ApiResponse
// @Router /api/v1/products [post]
func CreateProduct(c *gin.Context) {
	token := middleware.GetUpstreamToken(c)
	client := services.GetUpstreamClient()

	var data models.ProductData
	var message string

	if c.ContentType() == "multipart/form-data" {
		fields := utils.CollectFormFields(c,
			"name", "details", "shifra", "price", "quantity",
			"category", "brand", "productFlyer", "pageNumber", "tags", "specifications")

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

		message, err = client.SendRaw(c.Request.Context(), http.MethodPost, "/products", token, body, contentType, &data)
		if err != nil {
			failUpstream(c, err)
			return
		}
	} else {
		var req models.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}

		var err error
		message, err = client.SendJSON(c.Request.Context(), http.MethodPost, "/products", token, req, &data)
		if err != nil {
			failUpstream(c, err)
			return
		}
	}

	utils.RewriteProduct(&data.Product)
	if message == "" {
		message = "Product created successfully"
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, message, data))
}
