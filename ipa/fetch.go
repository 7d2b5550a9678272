package ipa

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"time"

	beans "github.com/appuploader/itunes-service-v3/model"
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

/*
*
Fetch pulls the signed package of a resolved download item into dir and
returns the file path. The store url is short lived, so the caller
should fetch right after resolving it. Cleanup of fetched files is the
caller's job.
*/
func Fetch(item *beans.DownloadItem, dir string) (string, error) {
	if item == nil || item.URL == "" {
		return "", errors.New("download item carries no url")
	}
	target := filepath.Join(dir, FileName(item.Metadata))
	client := resty.New().
		SetTimeout(10 * time.Minute).
		SetRetryCount(2)
	resp, e := client.R().SetOutput(target).Get(item.URL)
	if e != nil {
		return "", e
	}
	if resp.StatusCode() >= 400 {
		return "", fmt.Errorf("package fetch failed with status %d", resp.StatusCode())
	}
	log.Infof("fetched package to %s", target)
	return target, nil
}

// FileName derives "<DisplayName>_v<version>_<ts>.ipa" from the item
// metadata, falling back to the numeric track id when names are absent.
func FileName(metadata map[string]any) string {
	name, _ := metadata["bundleDisplayName"].(string)
	if name == "" {
		name, _ = metadata["itemName"].(string)
	}
	if name == "" {
		name = fmt.Sprintf("%v", metadata["itemId"])
	}
	version, _ := metadata["bundleShortVersionString"].(string)
	clean := filenameSanitizer.ReplaceAllString(name, "_")
	return fmt.Sprintf("%s_v%s_%d.ipa", clean, version, time.Now().UnixMilli())
}

func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	return fmt.Sprintf("%.2f %s", float64(bytes)/math.Pow(1024, float64(i)), sizes[i])
}
