package helper

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"cinema_booking/config"
)

func InitCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
}

// GeneratePosterUploadSignature signs a direct-upload request so the admin
// frontend can push poster images to Cloudinary without routing bytes
// through this server.
func GeneratePosterUploadSignature(folder string) (map[string]string, error) {
	apiSecret := config.Config("CLOUDINARY_API_SECRET")
	if apiSecret == "" {
		return nil, fmt.Errorf("CLOUDINARY_API_SECRET not set")
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	toSign := fmt.Sprintf("folder=%s&timestamp=%s%s", folder, timestamp, apiSecret)

	h := sha1.New()
	h.Write([]byte(toSign))
	signature := hex.EncodeToString(h.Sum(nil))

	return map[string]string{
		"signature": signature,
		"timestamp": timestamp,
		"folder":    folder,
		"apiKey":    config.Config("CLOUDINARY_API_KEY"),
		"cloudName": config.Config("CLOUDINARY_CLOUD_NAME"),
	}, nil
}

// PosterPublicId extracts the Cloudinary public id from a delivery URL:
// everything after /upload/, minus the version segment and the extension.
// Returns "" for URLs that are not Cloudinary uploads.
func PosterPublicId(url string) string {
	idx := strings.Index(url, "/upload/")
	if idx == -1 {
		return ""
	}
	path := url[idx+len("/upload/"):]

	if strings.HasPrefix(path, "v") {
		if slash := strings.Index(path, "/"); slash != -1 {
			if _, err := strconv.Atoi(path[1:slash]); err == nil {
				path = path[slash+1:]
			}
		}
	}

	if dot := strings.LastIndex(path, "."); dot != -1 {
		path = path[:dot]
	}
	return path
}

// DestroyPosterAsset removes an uploaded poster from Cloudinary in the
// background so movie deletion never waits on the CDN.
func DestroyPosterAsset(posterUrl string) {
	publicId := PosterPublicId(posterUrl)
	if publicId == "" {
		return
	}

	go func() {
		cld, err := InitCloudinary()
		if err != nil {
			log.Printf("cloudinary init: %v", err)
			return
		}
		invalidate := true
		_, err = cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
			PublicID:     publicId,
			ResourceType: "image",
			Invalidate:   &invalidate,
		})
		if err != nil {
			log.Printf("cloudinary destroy %s: %v", publicId, err)
		}
	}()
}
