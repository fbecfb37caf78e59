package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/learnhub/internal/progress"
	"github.com/ziadkadry99/learnhub/internal/site"
	"github.com/ziadkadry99/learnhub/internal/web"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the site as static HTML",
	Long: `Renders every page to a directory that any static file host can serve.
The export uses plain links and leaves the learning assistant off, since it
needs the live server.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("output", "public", "output directory")
	exportCmd.Flags().Bool("serve", false, "start a local HTTP server after exporting")
	exportCmd.Flags().Int("port", 8080, "port for the local preview server")
	exportCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	data, err := loadContent(cfg)
	if err != nil {
		return err
	}

	renderer, err := web.NewRenderer(web.RendererOptions{
		Site: web.SiteInfo{
			Name:         cfg.Site.Name,
			DemoVideoURL: cfg.Site.DemoVideoURL,
		},
		Navigator: web.PlainNavigator{},
	})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	outputDir, _ := cmd.Flags().GetString("output")
	exporter := &site.Exporter{
		OutputDir: outputDir,
		Renderer:  renderer,
		Catalog:   data.catalog,
		Lessons:   data.lessons,
		Reporter:  progress.NewReporter("Exporting site"),
	}
	count, err := exporter.Export()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d files)\n", outputDir, count)

	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		port, _ := cmd.Flags().GetInt("port")
		openBrowser, _ := cmd.Flags().GetBool("open")
		if err := site.Preview(outputDir, port, openBrowser, log); err != nil {
			return fmt.Errorf("serving site: %w", err)
		}
	}
	return nil
}
