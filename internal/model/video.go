package model

// Video sites and types used to pick a trailer
const (
	VideoSiteYouTube = "YouTube"
	VideoTypeTrailer = "Trailer"
)

// Video is a single entry of /movie/{id}/videos
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// VideoList is the payload of /movie/{id}/videos
type VideoList struct {
	ID      int64   `json:"id"`
	Results []Video `json:"results"`
}

// IsYouTubeTrailer reports whether the video is a trailer hosted on YouTube
func (v Video) IsYouTubeTrailer() bool {
	return v.Site == VideoSiteYouTube && v.Type == VideoTypeTrailer
}

// FirstTrailer returns the first YouTube trailer in API order
func FirstTrailer(videos []Video) (Video, bool) {
	for _, v := range videos {
		if v.IsYouTubeTrailer() {
			return v, true
		}
	}
	return Video{}, false
}
