package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gopak/csv2nfo/internal/catalog"
)

// kindFlags selects datasets; none set means the manager's defaults.
type kindFlags struct {
	movies, tvshow, episodes, songs bool
}

func (f *kindFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.movies, "movies", "m", false, "search movies")
	cmd.Flags().BoolVarP(&f.episodes, "episodes", "e", false, "search tv episodes")
	cmd.Flags().BoolVarP(&f.songs, "songs", "s", false, "search music")
	cmd.Flags().BoolVarP(&f.tvshow, "tvshow", "t", false, "search tv shows (one tvshow.nfo per show)")
}

func (f kindFlags) kinds() []catalog.Kind {
	var out []catalog.Kind
	if f.movies {
		out = append(out, catalog.KindMovie)
	}
	if f.tvshow {
		out = append(out, catalog.KindTvShow)
	}
	if f.episodes {
		out = append(out, catalog.KindEpisode)
	}
	if f.songs {
		out = append(out, catalog.KindMusic)
	}
	return out
}
