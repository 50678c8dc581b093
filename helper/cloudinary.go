package helper

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// UploadPaymentProof stores a GCash proof screenshot and returns its URL.
func UploadPaymentProof(ctx context.Context, file *multipart.FileHeader, paymentCode string) (string, error) {
	reader, err := file.Open()
	if err != nil {
		return "", err
	}
	defer reader.Close()

	cld := InitCloudinary()
	result, err := cld.Upload.Upload(ctx, reader, uploader.UploadParams{
		PublicID: fmt.Sprintf("payment-proofs/%s", paymentCode),
		Folder:   "payment-proofs",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
