package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitlit/internal/export"
	"github.com/julianstephens/habitlit/internal/utils"
)

type ExportCmd struct {
	Format string `short:"f" help:"Output format (json|yaml). Defaults to the output file extension, else json."`
	Output string `short:"o" help:"Write to this file instead of stdout." type:"path"`
}

func (c *ExportCmd) format() (export.Format, error) {
	if c.Format != "" {
		return export.ParseFormat(c.Format)
	}
	if c.Output != "" {
		return export.FormatFromPath(c.Output), nil
	}
	return export.FormatJSON, nil
}

func (c *ExportCmd) Run(ctx *Context) error {
	f, err := c.format()
	if err != nil {
		return err
	}

	m, err := ctx.Manager()
	if err != nil {
		return err
	}

	lastSaved := ""
	if t, ok := m.LastSaved(); ok {
		lastSaved = utils.FormatISO(t)
	}
	doc := export.NewDocument(m.Habits(), ctx.now(), lastSaved)

	if c.Output == "" {
		return export.Encode(ctx.out(), doc, f)
	}

	if err := os.MkdirAll(filepath.Dir(c.Output), 0o700); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.OpenFile(c.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Output, err)
	}
	if err := export.Encode(file, doc, f); err != nil {
		file.Close()
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := file.Close(); err != nil {
		return err
	}

	ctx.printf("Exported %d habits to %s\n", len(doc.Habits), c.Output)
	return nil
}

type ImportCmd struct {
	File   string `arg:"" help:"JSON or YAML export to import." type:"existingfile"`
	Format string `short:"f" help:"Input format (json|yaml). Defaults to the file extension."`
	Yes    bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	f := export.FormatFromPath(c.File)
	if c.Format != "" {
		var err error
		if f, err = export.ParseFormat(c.Format); err != nil {
			return err
		}
	}

	file, err := os.Open(c.File)
	if err != nil {
		return err
	}
	doc, err := export.Decode(file, f)
	file.Close()
	if err != nil {
		return err
	}

	m, err := ctx.Manager()
	if err != nil {
		return err
	}

	if !c.Yes {
		ok, err := ctx.confirm(fmt.Sprintf("Replace %d current habits with %d from %s?", len(m.Habits()), len(doc.Habits), filepath.Base(c.File)))
		if err != nil {
			return err
		}
		if !ok {
			ctx.println("Import cancelled.")
			return nil
		}
	}

	if err := m.Import(doc.Habits); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	ctx.printf("Imported %d habits.\n", len(doc.Habits))
	return nil
}
