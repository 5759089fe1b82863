// printlabel builds product labels in EPL2 or ZPL II, previews them as
// raster images, and sends them raw to a print device.
package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"printlabel/internal/label"
	"printlabel/internal/preview"
	"printlabel/internal/printer"
	"printlabel/internal/settings"
	"printlabel/internal/store"
)

type options struct {
	printerName string
	device      string
	language    string
	sizeKey     string

	item     string
	upc      string
	title    string
	casepack string
	copies   int

	settingsPath string
	dbPath       string
	out          string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "printlabel",
		Short:         "Product label printing for EPL and ZPL printers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.printerName, "printer", "", "printer name, used for layout settings and language guessing")
	pf.StringVar(&opts.device, "device", "", "device path to write to (serial port or spool node), '-' for stdout")
	pf.StringVar(&opts.language, "language", "auto", "printer language: auto, zpl or epl")
	pf.StringVar(&opts.sizeKey, "size", "4x6", "label size key")
	pf.StringVar(&opts.item, "item", "", "item number")
	pf.StringVar(&opts.upc, "upc", "", "UPC, 11 or 12 digits")
	pf.StringVar(&opts.title, "title", "", "product title")
	pf.StringVar(&opts.casepack, "casepack", "", "casepack quantity")
	pf.IntVar(&opts.copies, "copies", 1, "number of copies")
	pf.StringVar(&opts.settingsPath, "settings", "label_settings.yaml", "layout settings store")
	pf.StringVar(&opts.dbPath, "db", "data/labels.db", "saved items database")

	root.AddCommand(printCmd(opts))
	root.AddCommand(previewCmd(opts))
	root.AddCommand(itemsCmd(opts))
	root.AddCommand(settingsCmd(opts))
	return root
}

func (o *options) fields() label.Fields {
	return label.Fields{
		ItemNumber: o.item,
		UPC:        o.upc,
		Title:      o.title,
		Casepack:   o.casepack,
		Copies:     o.copies,
	}
}

func (o *options) settingsKey(size label.Size) settings.Key {
	return settings.Key{Printer: o.printerName, Size: size.Name}
}

// build resolves language and layout, and renders the command buffer.
func build(opts *options, log *slog.Logger) ([]byte, printer.Language, error) {
	lang, err := printer.ParseLanguage(opts.language, opts.printerName)
	if err != nil {
		return nil, "", err
	}

	// A non-empty UPC that does not normalize blocks the job; printing
	// a label with a silently wrong barcode is worse than no label.
	if opts.upc != "" {
		if _, ok := label.NormalizeUPC(opts.upc); !ok {
			return nil, "", fmt.Errorf("UPC must be 11 or 12 digits with a valid check digit")
		}
	}

	size := label.SizeFor(opts.sizeKey)
	mgr := settings.NewManager(opts.settingsPath, log)
	cfg := mgr.Get(opts.settingsKey(size))

	var data []byte
	if lang == printer.EPL {
		data = label.BuildEPL(opts.fields(), cfg, size)
	} else {
		data = label.BuildZPL(opts.fields(), cfg, size)
	}
	return data, lang, nil
}

func printCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Build a label and send it to the print device",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.Default()

			data, lang, err := build(opts, log)
			if err != nil {
				return err
			}

			if opts.device == "" || opts.device == "-" {
				_, err := os.Stdout.Write(data)
				return err
			}

			p, err := printer.Open(opts.device)
			if err != nil {
				return err
			}
			defer p.Close()

			if err := p.Send(data); err != nil {
				return err
			}
			log.Info("sent label job",
				"language", string(lang), "device", p.Name(), "bytes", len(data), "copies", opts.copies)

			rememberSelection(opts, lang, log)
			return nil
		},
	}
}

// rememberSelection persists the last printer choice; failure only
// costs convenience, never the job.
func rememberSelection(opts *options, lang printer.Language, log *slog.Logger) {
	db, err := store.Open(opts.dbPath)
	if err != nil {
		log.Warn("cannot open item store", "error", err)
		return
	}
	defer db.Close()
	sel := store.Selection{Printer: opts.printerName, Language: string(lang), Size: opts.sizeKey}
	if err := db.SaveSelection(sel); err != nil {
		log.Warn("cannot save printer selection", "error", err)
	}
}

func previewCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the label as a PNG image",
		RunE: func(cmd *cobra.Command, args []string) error {
			size := label.SizeFor(opts.sizeKey)
			img := preview.Render(opts.fields(), size, preview.EANSymbols{})

			mgr := settings.NewManager(opts.settingsPath, slog.Default())
			cfg := mgr.Get(opts.settingsKey(size))
			out := preview.Rotate(img, cfg.Orientation)

			f, err := os.Create(opts.out)
			if err != nil {
				return err
			}
			defer f.Close()
			return png.Encode(f, out)
		},
	}
	cmd.Flags().StringVar(&opts.out, "out", "preview.png", "output image path")
	return cmd
}

func itemsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage saved items",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved items, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := store.Open(opts.dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			items, err := db.Items()
			if err != nil {
				return err
			}
			for _, it := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					it.ItemNumber, it.UPC, it.Title, it.Casepack)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "save",
		Short: "Save the current field flags as an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.item == "" {
				return fmt.Errorf("--item is required")
			}
			db, err := store.Open(opts.dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			return db.SaveItem(store.Item{
				ItemNumber: opts.item,
				UPC:        opts.upc,
				Title:      opts.title,
				Casepack:   opts.casepack,
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <item-number>",
		Short: "Delete saved items by item number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := store.Open(opts.dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			return db.DeleteItem(args[0])
		},
	})

	return cmd
}

func settingsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and reset layout settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the resolved layout for the printer and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			size := label.SizeFor(opts.sizeKey)
			mgr := settings.NewManager(opts.settingsPath, slog.Default())
			cfg := mgr.Get(opts.settingsKey(size))
			fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", cfg)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset the layout for the printer and size to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			size := label.SizeFor(opts.sizeKey)
			mgr := settings.NewManager(opts.settingsPath, slog.Default())
			_, err := mgr.Reset(opts.settingsKey(size))
			return err
		},
	})

	return cmd
}
