package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	awspkg "ecommerce-api/pkg/aws"
	"ecommerce-api/services"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploaded images must stay small and be real images.
const maxImageSize = 200 * 1024

var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type UploadController struct {
	productService *services.ProductService
	s3Client       *s3.Client
	bucket         string
	region         string
}

func NewUploadController(productService *services.ProductService, s3Client *s3.Client, bucket, region string) *UploadController {
	return &UploadController{
		productService: productService,
		s3Client:       s3Client,
		bucket:         bucket,
		region:         region,
	}
}

// UploadProductImage validates the file and stores it in S3, then updates
// the product's image URL.
func (uc *UploadController) UploadProductImage(ctx *gin.Context) {
	if uc.s3Client == nil || uc.bucket == "" {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage is not configured"})
		return
	}

	productID := ctx.Param("id")

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 200KB limit"})
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType, ok := allowedImageTypes[ext]
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Only jpg, jpeg, png and webp files are allowed"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	key := fmt.Sprintf("products/%s/%s%s", productID, uuid.NewString(), ext)
	imgURL, err := awspkg.UploadObject(ctx.Request.Context(), uc.s3Client, uc.region, uc.bucket, key, contentType, file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	if svcErr := uc.productService.SetProductImage(ctx.Request.Context(), productID, imgURL); svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"imgUrl": imgURL})
}
