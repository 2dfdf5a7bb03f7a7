// Command ytkit queries YouTube through the ytkit client and prints the
// normalized results.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ytkit"
	"ytkit/config"
	"ytkit/continuation"
	"ytkit/internal/storage"
	"ytkit/renderer"
)

type options struct {
	debug    bool
	jsonOut  bool
	language string
	region   string
	timeout  time.Duration
	pages    int

	resume    string
	stateFile string

	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "ytkit",
		Short:         "Query YouTube's web API and print normalized results",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.debug)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable development logging")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Print JSON instead of a table")
	root.PersistentFlags().StringVar(&opts.language, "lang", "", "Interface language (overrides config)")
	root.PersistentFlags().StringVar(&opts.region, "region", "", "Content region (overrides config)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Operation timeout")
	root.PersistentFlags().IntVar(&opts.pages, "pages", 1, "Number of pages to fetch for listings")
	root.PersistentFlags().StringVar(&opts.resume, "resume", "", "Save listing progress under this name and resume from it")
	root.PersistentFlags().StringVar(&opts.stateFile, "state-file", "", "Walk state file (default $XDG_CONFIG_HOME/ytkit/walks.json)")

	root.AddCommand(
		searchCmd(opts),
		browseCmd(opts),
		playlistCmd(opts),
		watchCmd(opts),
		commentsCmd(opts),
		playerCmd(opts),
		tokenCmd(opts),
		walksCmd(opts),
	)
	return root
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

// client loads the config, applies the flag overrides and builds a client
// with a context bounded by --timeout.
func (o *options) client(cmd *cobra.Command) (*ytkit.Client, context.Context, context.CancelFunc, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if o.language != "" {
		cfg.Language = o.language
	}
	if o.region != "" {
		cfg.Region = o.region
	}

	c, err := ytkit.New(cfg, ytkit.WithLogger(o.logger))
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	return c, ctx, cancel, nil
}

var errEnough = errors.New("enough pages")

// listing prints the first page and follows up to --pages pages. With
// --resume the walk continues from the stored state instead and the state
// is saved again afterwards.
func (o *options) listing(cmd *cobra.Command, first func(context.Context, *ytkit.Client) (*ytkit.Page, error)) error {
	c, ctx, cancel, err := o.client(cmd)
	if err != nil {
		return err
	}
	defer cancel()
	defer c.Close()

	command := strings.TrimSpace(cmd.Name() + " " + strings.Join(cmd.Flags().Args(), " "))

	var (
		store *storage.WalkStore
		state *continuation.State
	)
	if o.resume != "" {
		store, err = o.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		w, err := store.Get(o.resume)
		switch {
		case err == nil:
			if w.Command != command {
				return fmt.Errorf("walk %q was started by %q", o.resume, w.Command)
			}
			state = w.State
			o.logger.Debug("resuming walk",
				zap.String("walk", w.Name),
				zap.Int("pages", state.Pages),
				zap.Int("retrieved", state.Retrieved))
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}
	}

	var (
		items   []renderer.Container
		fetched int
	)
	if state == nil {
		page, err := first(ctx, c)
		if err != nil {
			return err
		}
		items = page.Items
		fetched = 1
		state = continuation.NewState(page.Next)
		state.Pages = 1
		state.Retrieved = len(page.Items)
	}

	if fetched < o.pages {
		err = c.Walk(ctx, state, func(p *ytkit.Page) error {
			items = append(items, p.Items...)
			fetched++
			if fetched >= o.pages {
				return errEnough
			}
			return nil
		})
		if err != nil && !errors.Is(err, errEnough) {
			return err
		}
	}

	if store != nil {
		if err := saveWalk(store, o.resume, command, state); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if o.jsonOut {
		return writeJSON(out, struct {
			Items []renderer.Container `json:"items"`
			Next  string               `json:"next,omitempty"`
		}{items, state.Token.Value})
	}
	printItems(out, items)
	if state.HasMore() {
		fmt.Fprintf(out, "\nnext: %s %s\n", state.Token.Family, state.Token.Value)
	}
	return nil
}

// saveWalk stores an unfinished walk and forgets a finished one.
func saveWalk(store *storage.WalkStore, name, command string, state *continuation.State) error {
	if state.HasMore() {
		return store.Put(&storage.Walk{Name: name, Command: command, State: state})
	}
	if err := store.Delete(name); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return nil
}

func (o *options) openStore() (*storage.WalkStore, error) {
	path := o.stateFile
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locate state file: %w", err)
		}
		path = filepath.Join(dir, "ytkit", "walks.json")
	}
	return storage.Open(path)
}

func searchCmd(o *options) *cobra.Command {
	var params string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search videos, channels and playlists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return o.listing(cmd, func(ctx context.Context, c *ytkit.Client) (*ytkit.Page, error) {
				return c.Search(ctx, query, params)
			})
		},
	}
	cmd.Flags().StringVar(&params, "params", "", "Encoded search filter")
	return cmd
}

func browseCmd(o *options) *cobra.Command {
	var params string
	cmd := &cobra.Command{
		Use:   "browse <browse-id>",
		Short: "Browse a channel, channel tab or feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.listing(cmd, func(ctx context.Context, c *ytkit.Client) (*ytkit.Page, error) {
				return c.Browse(ctx, args[0], params)
			})
		},
	}
	cmd.Flags().StringVar(&params, "params", "", "Encoded tab selector")
	return cmd
}

func playlistCmd(o *options) *cobra.Command {
	var offset int
	cmd := &cobra.Command{
		Use:   "playlist <playlist-id|channel-id>",
		Short: "List a playlist, optionally starting at an offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.listing(cmd, func(ctx context.Context, c *ytkit.Client) (*ytkit.Page, error) {
				if offset > 0 {
					return c.PlaylistAt(ctx, args[0], offset)
				}
				return c.Playlist(ctx, args[0])
			})
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "Start at this item index")
	return cmd
}

func watchCmd(o *options) *cobra.Command {
	var playlistID string
	cmd := &cobra.Command{
		Use:   "watch <video-id>",
		Short: "Show the watch page of a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := o.client(cmd)
			if err != nil {
				return err
			}
			defer cancel()
			defer c.Close()

			w, err := c.Watch(ctx, args[0], playlistID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if o.jsonOut {
				return writeJSON(out, w)
			}
			printItems(out, w.Items)
			if len(w.Related) > 0 {
				fmt.Fprintln(out, "\nrelated:")
				printItems(out, w.Related)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&playlistID, "list", "", "Playlist the video is watched in")
	return cmd
}

func commentsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "comments <video-id>",
		Short: "List the comments of a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.listing(cmd, func(ctx context.Context, c *ytkit.Client) (*ytkit.Page, error) {
				return c.Comments(ctx, args[0])
			})
		},
	}
}

func playerCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "player <video-id>",
		Short: "Resolve the playback formats of a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel, err := o.client(cmd)
			if err != nil {
				return err
			}
			defer cancel()
			defer c.Close()

			pb, err := c.Player(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if o.jsonOut {
				return writeJSON(out, pb)
			}
			fmt.Fprintf(out, "%s (%s, %s) player %s\n\n", pb.Title, pb.Author, pb.Duration, pb.PlayerID)
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ITAG\tMIME\tQUALITY\tSIZE\tURL")
			for _, f := range pb.Formats {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", f.Itag, f.MimeType, f.QualityLabel, f.Size(), f.URL)
			}
			return w.Flush()
		},
	}
}

func tokenCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "token <continuation> | token <playlist-id> <offset>",
		Short: "Decode a browse continuation, or build one for a playlist offset",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 2 {
				offset, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid offset %q: %w", args[1], err)
				}
				tok, err := continuation.PackOffset(args[0], offset)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, tok.Value)
				return nil
			}

			bt, err := continuation.DecodeBrowse(args[0])
			if err != nil {
				return err
			}
			if o.jsonOut {
				return writeJSON(out, bt)
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "browse id\t%s\n", bt.BrowseID)
			fmt.Fprintf(w, "list id\t%s\n", bt.ListID)
			fmt.Fprintf(w, "params\t%s\n", bt.Params)
			if off, err := bt.Offset(); err == nil {
				fmt.Fprintf(w, "offset\t%d\n", off)
			}
			return w.Flush()
		},
	}
}

func walksCmd(o *options) *cobra.Command {
	var remove bool
	cmd := &cobra.Command{
		Use:   "walks [name...]",
		Short: "List saved listing walks, or delete them with --delete",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := o.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if remove {
				for _, name := range args {
					if err := store.Delete(name); err != nil {
						return err
					}
				}
				return nil
			}

			walks := store.List()
			out := cmd.OutOrStdout()
			if o.jsonOut {
				return writeJSON(out, walks)
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOMMAND\tPAGES\tITEMS\tUPDATED\tEXPIRED")
			for _, wk := range walks {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%t\n", wk.Name, wk.Command,
					wk.State.Pages, wk.State.Retrieved, wk.State.UpdatedAt.Format(time.RFC3339), wk.State.IsExpired())
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&remove, "delete", false, "Delete the named walks")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printItems prints one row per container, indenting nested sections.
func printItems(out io.Writer, items []renderer.Container) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tVARIANT\tID\tTITLE\tDETAIL")
	var walk func(items []renderer.Container, depth int)
	walk = func(items []renderer.Container, depth int) {
		for _, c := range items {
			id, title, detail := describe(c)
			fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("  ", depth), c.Category, c.OriginalVariant, id, truncate(title, 60), detail)
			walk(c.Children(), depth+1)
		}
	}
	walk(items, 0)
	w.Flush()
}

func describe(c renderer.Container) (id, title, detail string) {
	switch d := c.Data.(type) {
	case renderer.Video:
		return d.ID, d.Title, joinNonEmpty(d.Channel.Name, d.ViewCountText, d.PublishedText, d.DurationText)
	case renderer.Playlist:
		return d.ID, d.Title, joinNonEmpty(d.Channel.Name, d.VideoCountText)
	case renderer.Channel:
		return d.ID, d.Name, joinNonEmpty(d.Handle, d.SubscriberCountText, d.VideoCountText)
	case renderer.Section:
		return d.ID, d.Title, ""
	case renderer.Continuation:
		return "", "", truncate(d.Token, 40)
	case renderer.Message:
		return "", d.Title, d.Text
	case renderer.Chip:
		return "", d.Text, d.Query
	case renderer.CommunityPost:
		return d.ID, d.Text, joinNonEmpty(d.Channel.Name, d.LikeCountText, d.PublishedText)
	case renderer.Comment:
		return d.ID, d.Text, joinNonEmpty(d.Author.Name, d.LikeCountText, d.PublishedText)
	case renderer.HeroVideo:
		return d.VideoID, d.Title, d.Subtitle
	case renderer.SearchSidebar:
		return "", d.Title, d.Subtitle
	case renderer.SearchRefinementCard:
		return d.PlaylistID, d.Query, ""
	case renderer.RecognitionShelf:
		return "", d.Title, d.Subtitle
	case renderer.Exception:
		return "", "", d.Message
	}
	return "", "", ""
}

func joinNonEmpty(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " · ")
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
