package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zpodfactory/zpodtg/internal/api"
	zerrors "github.com/zpodfactory/zpodtg/internal/errors"
	"github.com/zpodfactory/zpodtg/internal/namespace"
	"github.com/zpodfactory/zpodtg/internal/output"
	"github.com/zpodfactory/zpodtg/internal/render"
)

// generateOptions holds everything runGenerate needs, so tests can
// drive it without going through cobra.
type generateOptions struct {
	Host      string
	Token     string
	ListZPods bool
	ZPodName  string
	Template  string
	ExtraVars string
	Output    string
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	var (
		listZPods     bool
		zpodName      string
		templateFile  string
		extraVarsFile string
		outputFile    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch zPod metadata and render a Jinja2 template",
		Long: `Fetch a zPod record (plus its DNS entries and the global settings)
from the zpodapi, build a flat template context from it, and render a
Jinja2 template.

DNS entries and settings are enrichment: if either fetch fails, a
warning is logged and rendering continues with an empty list.

Examples:
  # List available zPods
  zpodtg generate --list-zpods

  # Render an inventory template to stdout
  zpodtg generate --zpod-name lab01 --template-file inventory.j2

  # Render to a file with extra variables
  zpodtg generate --zpod-name lab01 --template-file esxi.ks.j2 \
    --extra-vars vars.json --output-file ks.cfg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runGenerate(cmd.Context(), generateOptions{
				Host:      GetHost(),
				Token:     GetToken(),
				ListZPods: listZPods,
				ZPodName:  zpodName,
				Template:  templateFile,
				ExtraVars: extraVarsFile,
				Output:    outputFile,
			})
			if err != nil {
				return zerrors.NewExitError(err, ExitGeneralError)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&listZPods, "list-zpods", false,
		"List available zPods and exit")
	cmd.Flags().StringVar(&zpodName, "zpod-name", "",
		"Name of the zPod to fetch")
	cmd.Flags().StringVar(&templateFile, "template-file", "",
		"Path to the Jinja2 template file")
	cmd.Flags().StringVar(&extraVarsFile, "extra-vars", "",
		"Path to a JSON file with extra template variables")
	cmd.Flags().StringVar(&outputFile, "output-file", "",
		"Write rendered output to file instead of stdout")

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(ctx context.Context, opts generateOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Host == "" {
		return zerrors.Wrap(zerrors.ErrInput,
			"zpodapi host is required (--zpodfactory-host or ZPODFACTORY_HOST)")
	}
	if opts.Token == "" {
		return zerrors.Wrap(zerrors.ErrInput,
			"zpodapi token is required (--zpodfactory-token or ZPODFACTORY_TOKEN)")
	}

	client := api.New(opts.Host, opts.Token)

	if opts.ListZPods {
		zpods, err := client.ListZPods(ctx)
		if err != nil {
			return err
		}
		output.Println("Available zPods:")
		for _, z := range zpods {
			output.Println(output.FormatZPodLine(z.Name))
		}
		return nil
	}

	if opts.ZPodName == "" {
		return zerrors.Wrap(zerrors.ErrInput, "--zpod-name is required for template generation")
	}
	if opts.Template == "" {
		return zerrors.Wrap(zerrors.ErrInput, "--template-file is required for template generation")
	}
	if err := validateTemplateFile(opts.Template); err != nil {
		return err
	}

	extraVars, err := loadExtraVars(opts.ExtraVars)
	if err != nil {
		return err
	}

	output.Info("fetching zPod", "name", opts.ZPodName, "host", opts.Host)
	zpod, err := client.GetZPod(ctx, opts.ZPodName)
	if err != nil {
		return err
	}

	output.Debug("fetching DNS entries", "zpod_id", zpod.ID)
	dnsRecords := client.GetDNSRecords(ctx, zpod.ID)

	output.Debug("fetching zPodFactory settings")
	settings := client.GetSettings(ctx)

	ns := namespace.Build(zpod, dnsRecords, settings, extraVars)

	rendered, err := render.RenderFile(opts.Template, ns)
	if err != nil {
		return err
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		output.Info("output written", "file", opts.Output)
		return nil
	}

	output.Print(rendered)
	return nil
}

// validateTemplateFile checks the template path exists and is a regular
// file before any network round-trips happen.
func validateTemplateFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerrors.Wrapf(zerrors.ErrTemplate, err, "template file not accessible")
	}
	if info.IsDir() {
		return zerrors.Wrap(zerrors.ErrTemplate,
			fmt.Sprintf("template path %s is a directory, not a file", path))
	}
	return nil
}

// loadExtraVars reads and decodes the extra-vars JSON file. The top
// level must be a JSON object; arrays and scalars are rejected.
func loadExtraVars(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerrors.Wrapf(zerrors.ErrInput, err, "reading extra vars file")
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, zerrors.Wrapf(zerrors.ErrInput, err, "invalid JSON in extra vars file")
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, zerrors.Wrap(zerrors.ErrInput,
			fmt.Sprintf("extra vars JSON must be an object, got %s", jsonTypeName(decoded)))
	}

	return obj, nil
}

// jsonTypeName names a decoded JSON value's type for error messages.
func jsonTypeName(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return "unknown"
	}
}
