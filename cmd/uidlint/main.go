// Command uidlint checks, reformats, and inspects legacy UI-definition
// documents and their textures. It performs the file I/O the uidef library
// deliberately leaves to its callers.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jacoelho/uidef"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	var verbose bool
	root := &cobra.Command{
		Use:           "uidlint",
		Short:         "Lint and reformat UI-definition documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCheckCmd(log))
	root.AddCommand(newFmtCmd(log))
	root.AddCommand(newTextureCmd(log))
	return root
}

func newCheckCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse documents, resolve cross-file references, and report problems",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := uidef.NewDocumentSet()
			for _, name := range args {
				dir, base := filepath.Split(name)
				if dir == "" {
					dir = "."
				}
				if err := set.AddFS(os.DirFS(dir), base); err != nil {
					return err
				}
			}

			failed := false
			for _, doc := range set.Documents() {
				for _, parseErr := range doc.Errors {
					failed = true
					log.WithField("file", doc.Filename).Error(parseErr.Message)
				}
				if doc.IsManifest() {
					log.WithField("file", doc.Filename).
						Debugf("manifest with %d includes", len(doc.Includes))
				}
			}
			for _, warning := range set.Resolve() {
				log.WithField("file", warning.File).
					Warnf("unresolved reference %q", warning.Item)
			}
			if failed {
				return fmt.Errorf("check failed")
			}
			log.Debugf("checked %d documents", len(set.Documents()))
			return nil
		},
	}
}

func newFmtCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reserialize a document to stdout in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc := uidef.ParseDocument(string(data), args[0])
			for _, parseErr := range doc.Errors {
				log.WithField("file", doc.Filename).Error(parseErr.Message)
			}
			if len(doc.Errors) > 0 {
				return fmt.Errorf("fmt failed")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), uidef.Serialize(doc))
			return err
		},
	}
}

func newTextureCmd(log *logrus.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "texture <file>...",
		Short: "Decode textures and print their dimensions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cache, err := uidef.NewTextureCache(len(args))
			if err != nil {
				return err
			}
			for _, name := range args {
				data, err := os.ReadFile(name)
				if err != nil {
					return err
				}
				img, err := cache.Load(name, data)
				if err != nil {
					log.WithField("file", name).Error(err)
					return fmt.Errorf("texture decode failed")
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d\n", name, img.Width, img.Height); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
