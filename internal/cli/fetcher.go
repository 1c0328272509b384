package cli

import (
	"github.com/mgpai22/captioncut/internal/fetch"
	"github.com/mgpai22/captioncut/internal/video"
)

// builds the fetcher used by cut and trim, honoring --stream
func newFetcher(stream int) *fetch.LocalFetcher {
	if stream < 0 {
		stream = cfg.Media.SubtitleStream
	}
	return fetch.NewLocalFetcher(
		video.NewProcessor(),
		fetch.Options{Stream: stream},
		logger,
	)
}
