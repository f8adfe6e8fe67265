package main

import (
	"fmt"

	"github.com/fwojciec/hoverdoc"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	var doc *hoverdoc.RichDoc
	var err error

	switch c.Kind {
	case "element":
		doc, err = deps.Docs.FetchElement(deps.Ctx, c.Name)
	case "global":
		doc, err = deps.Docs.FetchGlobalAttribute(deps.Ctx, c.Name)
	case "attr":
		doc, err = deps.Docs.FetchElementAttribute(deps.Ctx, c.Name, c.Element)
	}
	if err != nil {
		if hoverdoc.ErrorCode(err) == hoverdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stdout, "No documentation found for %q.\n", c.Name)
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", hoverdoc.ErrorMessage(err))
		return err
	}

	if c.Markdown {
		markdown, err := deps.Service.RenderMarkdown(doc)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", hoverdoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, markdown)
		return nil
	}

	fmt.Fprintln(deps.Stdout, doc.Render())
	return nil
}
