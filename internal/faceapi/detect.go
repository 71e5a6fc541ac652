package faceapi

import "context"

// DetectFace detects faces in the image at imageURL. Faces come back ranked
// by rectangle size, largest first. No faces yields an empty slice.
func (c *Client) DetectFace(ctx context.Context, imageURL string) ([]DetectedFace, error) {
	result, err := doPostJSON[[]DetectedFace](ctx, c, "detect?returnFaceId=true", imageURLRequest{URL: imageURL})
	if err != nil {
		return nil, err
	}
	if *result == nil {
		return []DetectedFace{}, nil
	}
	return *result, nil
}
