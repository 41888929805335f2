package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Client uploads deliverable media and avatars to the CDN and hands back
// delivery URLs. Callers never touch the cloudinary SDK directly.
type Client interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (url, thumbnailURL string, err error)
	UploadVideo(ctx context.Context, file io.Reader, folder, publicID string) (url, thumbnailURL string, err error)
}

const thumbWidth = 200

// Eager transformations applied at upload time so the frontend gets
// pre-optimized assets.
const (
	imageEager = "q_auto,f_auto,w_800,c_fill"
	videoEager = "q_auto:low,f_auto,w_1280"
)

var eagerSync = false

type client struct {
	cloudName string
	uploader  *uploader.API
}

// New builds a Client from Cloudinary credentials.
func New(cloudName, apiKey, apiSecret string) (Client, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &client{cloudName: cloudName, uploader: up}, nil
}

func (c *client) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, string, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:     folder,
		PublicID:   publicID,
		Eager:      imageEager,
		EagerAsync: &eagerSync,
	})
	if err != nil {
		return "", "", err
	}
	thumb := ""
	if len(result.Eager) > 0 {
		thumb = result.Eager[0].SecureURL
	}
	if thumb == "" {
		thumb = fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/q_auto,f_auto,w_%d,c_fill/%s",
			c.cloudName, thumbWidth, result.PublicID)
	}
	return result.SecureURL, thumb, nil
}

func (c *client) UploadVideo(ctx context.Context, file io.Reader, folder, publicID string) (string, string, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "video",
		Eager:        videoEager,
		EagerAsync:   &eagerSync,
	})
	if err != nil {
		return "", "", err
	}
	thumb := ""
	if len(result.Eager) > 0 {
		thumb = result.Eager[0].SecureURL
	}
	if thumb == "" {
		thumb = fmt.Sprintf("https://res.cloudinary.com/%s/video/upload/so_0/%s.jpg", c.cloudName, result.PublicID)
	}
	return result.SecureURL, thumb, nil
}
