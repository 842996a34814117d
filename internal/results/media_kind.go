package results

// MediaKind represents the type of a media item as an enum
type MediaKind string

const (
	MediaKindMovie    MediaKind = "movie"
	MediaKindShow     MediaKind = "show"
	MediaKindSeason   MediaKind = "season"
	MediaKindEpisode  MediaKind = "episode"
	MediaKindArtist   MediaKind = "artist"
	MediaKindAlbum    MediaKind = "album"
	MediaKindTrack    MediaKind = "track"
	MediaKindPhoto    MediaKind = "photo"
	MediaKindClip     MediaKind = "clip"
	MediaKindPlaylist MediaKind = "playlist"
	MediaKindUnknown  MediaKind = "unknown"
)

// Plex reports the metadata type as a lowercase string in the "type" field.
var mediaKindMap = map[string]MediaKind{
	"movie":    MediaKindMovie,
	"show":     MediaKindShow,
	"season":   MediaKindSeason,
	"episode":  MediaKindEpisode,
	"artist":   MediaKindArtist,
	"album":    MediaKindAlbum,
	"track":    MediaKindTrack,
	"photo":    MediaKindPhoto,
	"clip":     MediaKindClip,
	"playlist": MediaKindPlaylist,
}

// NewMediaKind returns the MediaKind for a given Plex metadata type
func NewMediaKind(plexType string) MediaKind {
	kind, ok := mediaKindMap[plexType]
	if !ok {
		return MediaKindUnknown
	}
	return kind
}
