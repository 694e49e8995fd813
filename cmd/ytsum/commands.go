package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"jamesfarrell.me/youtube-summarizer/internal/app"
	"jamesfarrell.me/youtube-summarizer/internal/config"
	"jamesfarrell.me/youtube-summarizer/internal/pipeline"
)

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if lang := c.String("lang"); lang != "" {
		cfg.Transcript.Language = lang
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %w", errs[0])
	}

	logOut := io.Discard
	if c.Bool("verbose") {
		logOut = os.Stderr
	}
	app.SetupLogging(cfg, logOut)
	return cfg, nil
}

func transcriptCommand() *cli.Command {
	return &cli.Command{
		Name:      "transcript",
		Usage:     "print the timed transcript of a video",
		ArgsUsage: "<video-url>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "plain", Usage: "print only the joined transcript text"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return usageError(c)
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			videoID, err := pipeline.Resolve(c.Args().First())
			if err != nil {
				return err
			}
			logf("Video ID: %s", videoID)

			segments, err := app.NewTranscriptClient(cfg).Fetch(c.Context, videoID)
			if err != nil {
				return fmt.Errorf("failed to fetch transcript: %w", err)
			}
			logf("Fetched %d segments", len(segments))

			out := c.App.Writer
			if c.Bool("plain") {
				for i, seg := range segments {
					if i > 0 {
						fmt.Fprint(out, " ")
					}
					fmt.Fprint(out, seg.Text)
				}
				fmt.Fprintln(out)
				return nil
			}
			for _, seg := range segments {
				fmt.Fprintf(out, "[%s --> %s] %s\n", formatOffset(seg.Start), formatOffset(seg.End), seg.Text)
			}
			return nil
		},
	}
}

func summarizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "summarize",
		Usage:     "summarize a video from its transcript",
		ArgsUsage: "<video-url>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "max-words", Usage: "words per chunk (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return usageError(c)
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if n := c.Int("max-words"); n > 0 {
				cfg.Pipeline.MaxWords = n
			}

			var bar *progressbar.ProgressBar
			pcfg := app.PipelineConfig(cfg)
			pcfg.OnChunk = func(done, total int) {
				if bar == nil {
					bar = progressbar.NewOptions(total,
						progressbar.OptionSetWriter(os.Stderr),
						progressbar.OptionSetDescription("summarizing chunks"),
						progressbar.OptionShowCount(),
						progressbar.OptionClearOnFinish(),
					)
				}
				bar.Set(done)
			}

			logf("Summarizing with %s (%s)...", cfg.Summarizer.Provider, cfg.Summarizer.Model)
			summary, err := app.NewPipeline(cfg, pcfg).Run(c.Context, c.Args().First())
			if bar != nil {
				bar.Finish()
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, summary)
			return nil
		},
	}
}

func formatOffset(d time.Duration) string {
	d = d.Round(time.Millisecond)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	ms := (d % time.Second) / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}
