package main

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
)

//go:embed locales/*.toml
var locales embed.FS

// Message IDs of the sample items, in display order.
var sampleItems = []string{"bacon", "doner", "salami"}

var (
	stylePath  string
	lang       string
	preview    bool
	fontPath   string
	width      int
	height     int
	logLevel   string
	logPath    string
	useCannoli bool
)

var rootCmd = &cobra.Command{
	Use:   "bulletdemo",
	Short: "Show a bulleted list",
	Long: `Renders a bulleted list of sample items, or the items of a TOML style file.
The list opens in an SDL window unless --preview prints it to the terminal.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		bulletlist.SetLogPath(logPath)
		bulletlist.Init(bulletlist.Options{
			IsCannoli: useCannoli,
			FontPath:  fontPath,
		})
		defer bulletlist.Close()
		bulletlist.SetRawLogLevel(logLevel)

		m, err := newModel()
		if err != nil {
			return err
		}

		if preview {
			return runPreview(cmd, m)
		}
		return runWindow(m)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&stylePath, "style", "s", "", "TOML style file")
	rootCmd.Flags().StringVarP(&lang, "lang", "l", "en", "language of the sample items")
	rootCmd.Flags().BoolVarP(&preview, "preview", "p", false, "print the list to the terminal instead of opening a window")
	rootCmd.Flags().StringVar(&fontPath, "font", "", "TTF font for the SDL window")
	rootCmd.Flags().IntVarP(&width, "width", "w", 640, "width in pixels (window) or cells (preview, 0 disables wrapping)")
	rootCmd.Flags().IntVar(&height, "height", 480, "window height in pixels")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logPath, "log-file", "", "also write logs to this file")
	rootCmd.Flags().BoolVar(&useCannoli, "cannoli", false, "use the Cannoli theme")
}

// newModel creates the list state: localized sample items, then the style
// file on top.
func newModel() (*model.ListModel, error) {
	catalog := bulletlist.NewCatalog(language.English)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if err := catalog.LoadMessageFileFS(locales, file); err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(file), err)
		}
	}

	m := model.New()
	m.SetItems(catalog.Items(lang, sampleItems))

	if stylePath != "" {
		style, err := bulletlist.LoadStyle(stylePath)
		if err != nil {
			return nil, err
		}
		if err := style.Apply(m); err != nil {
			return nil, err
		}
		if style.Has("items") {
			m.SetItems(catalog.Items(lang, style.Items))
		}
	}

	bulletlist.GetLogger().Info("List configured",
		"items", len(m.Items()),
		"lang", lang,
		"strategy", m.Strategy().String(),
	)
	return m, nil
}
