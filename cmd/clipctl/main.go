package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/Dhanarooban1/websiteEventsToCalendar/config"
	calendarUC "github.com/Dhanarooban1/websiteEventsToCalendar/internal/calendar"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/extraction"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/form"
	extractionUC "github.com/Dhanarooban1/websiteEventsToCalendar/internal/extraction/usecase"
	formUC "github.com/Dhanarooban1/websiteEventsToCalendar/internal/form/usecase"
	"github.com/Dhanarooban1/websiteEventsToCalendar/internal/store"
	fileStore "github.com/Dhanarooban1/websiteEventsToCalendar/internal/store/file"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/gauth"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/gcalendar"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/gemini"
	"github.com/Dhanarooban1/websiteEventsToCalendar/pkg/log"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "clipctl",
		Usage: "Clip event details from text into Google Calendar.",
		Commands: []*cli.Command{
			authCommand(),
			setKeyCommand(),
			extractCommand(),
			draftCommand(),
			submitCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// deps bundles everything the pipeline commands share.
type deps struct {
	cfg    *config.Config
	logger log.Logger
	st     store.Store
}

func buildDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	st, err := fileStore.NewStore(logger, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", cfg.Store.Path, err)
	}

	return &deps{cfg: cfg, logger: logger, st: st}, nil
}

func (d *deps) controller() (form.Controller, error) {
	geminiClient := gemini.NewClient(gemini.WithModel(d.cfg.Gemini.Model))
	extractor := extractionUC.New(d.logger, geminiClient, d.st,
		d.cfg.Gemini.APIKey, d.cfg.Extraction.Timezone, d.cfg.Extraction.CacheSize)

	tokens := gauth.NewProvider(gauth.Config{
		ClientID:     d.cfg.Google.ClientID,
		ClientSecret: d.cfg.Google.ClientSecret,
		TokenFile:    d.cfg.Google.TokenFile,
	})

	gcal, err := gcalendar.NewClient(context.Background(), tokens.TokenSource(context.Background()))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize calendar client: %w", err)
	}
	submitter := calendarUC.NewSubmitter(d.logger, tokens, gcal,
		d.cfg.Extraction.Timezone, d.cfg.Google.CalendarID)

	return formUC.New(d.logger, extractor, submitter, d.st), nil
}

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authorize access to your Google Calendar.",
		Action: func(c *cli.Context) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}

			provider := gauth.NewProvider(gauth.Config{
				ClientID:     d.cfg.Google.ClientID,
				ClientSecret: d.cfg.Google.ClientSecret,
				TokenFile:    d.cfg.Google.TokenFile,
			})

			fmt.Printf("Go to the following link in your browser then type the "+
				"authorization code:\n%v\n", provider.AuthCodeURL())

			fmt.Print("Enter Authorization Code: ")
			reader := bufio.NewReader(os.Stdin)
			code, _ := reader.ReadString('\n')

			if err := provider.Exchange(c.Context, strings.TrimSpace(code)); err != nil {
				return fmt.Errorf("unable to retrieve token: %w", err)
			}

			fmt.Printf("Token saved to %s\n", d.cfg.Google.TokenFile)
			return nil
		},
	}
}

func setKeyCommand() *cli.Command {
	return &cli.Command{
		Name:      "set-key",
		Usage:     "Store the LLM API key used for extraction.",
		ArgsUsage: "<api-key>",
		Action: func(c *cli.Context) error {
			key := strings.TrimSpace(c.Args().First())
			if key == "" {
				return fmt.Errorf("usage: clipctl set-key <api-key>")
			}

			d, err := buildDeps()
			if err != nil {
				return err
			}

			raw, err := json.Marshal(extraction.CredentialConfig{APIKey: key})
			if err != nil {
				return err
			}
			if err := d.st.Set(c.Context, store.KeyCredential, raw); err != nil {
				return fmt.Errorf("failed to store credential: %w", err)
			}

			fmt.Println("API key stored.")
			return nil
		},
	}
}

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Extract event details from text and merge them into the draft.",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "stdin", Usage: "Read the text from standard input."},
		},
		Action: func(c *cli.Context) error {
			text := strings.Join(c.Args().Slice(), " ")
			if c.Bool("stdin") {
				raw, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				text = string(raw)
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("usage: clipctl extract <text> (or --stdin)")
			}

			d, err := buildDeps()
			if err != nil {
				return err
			}
			fc, err := d.controller()
			if err != nil {
				return err
			}

			out, err := fc.Extract(c.Context, text)
			if err != nil {
				return err
			}

			return printJSON(out.Draft)
		},
	}
}

func draftCommand() *cli.Command {
	return &cli.Command{
		Name:  "draft",
		Usage: "Print the current draft form.",
		Action: func(c *cli.Context) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			fc, err := d.controller()
			if err != nil {
				return err
			}
			return printJSON(fc.Draft())
		},
	}
}

func submitCommand() *cli.Command {
	return &cli.Command{
		Name:  "submit",
		Usage: "Submit the current draft to Google Calendar.",
		Action: func(c *cli.Context) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			fc, err := d.controller()
			if err != nil {
				return err
			}

			out, err := fc.Submit(c.Context)
			if err != nil {
				return err
			}

			fmt.Printf("Created event %s\n%s\n", out.EventID, out.HtmlLink)
			return nil
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
