package types

type UploadImageResp struct {
	ImageID string `json:"imageId"`
	URL     string `json:"url"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type ImageResp struct {
	ImageID     string `json:"imageId"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ByteSize    int64  `json:"byteSize"`
}
