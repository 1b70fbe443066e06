package video

// Video is one upload on the channel. ID is the stable identity; Title and
// UploadDate come from the platform and may be noisy or missing.
type Video struct {
	ID         string `json:"video_id"`
	Title      string `json:"title"`
	UploadDate string `json:"upload_date,omitempty"` // YYYY-MM-DD when known
	URL        string `json:"url"`
}

// WatchURL builds the canonical watch URL for a video ID.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
