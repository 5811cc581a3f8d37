package catalog

import "fmt"

// Kind names one media dataset and the document family rendered from it.
type Kind string

const (
	KindMovie   Kind = "movie"
	KindTvShow  Kind = "tvshow"
	KindEpisode Kind = "episode"
	KindMusic   Kind = "music"
)

// Kinds lists every known kind in report order.
var Kinds = []Kind{KindMovie, KindTvShow, KindEpisode, KindMusic}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown media kind: %q", s)
}

// Label is the plural used in user-facing messages.
func (k Kind) Label() string {
	switch k {
	case KindMovie:
		return "movies"
	case KindTvShow:
		return "tv shows"
	case KindEpisode:
		return "episodes"
	case KindMusic:
		return "songs"
	default:
		return string(k)
	}
}
