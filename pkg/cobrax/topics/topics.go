// Package topics adds file-backed help topics to a cobra command tree:
// `app help <topic>` prints a topic, `app help topics` lists them and any
// other argument falls back to the regular command help.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one help page
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Set is the collection of topics found in a filesystem
type Set struct {
	topics   map[string]Topic
	renderer Renderer
}

// Load collects every file of fsys whose extension is in exts (".md" and
// ".txt" when empty). The topic name is the file name without extension.
func Load(fsys fs.FS, renderer Renderer, exts ...string) (*Set, error) {
	if len(exts) == 0 {
		exts = []string{".md", ".txt"}
	}
	if renderer == nil {
		renderer = Plain
	}

	s := &Set{topics: make(map[string]Topic), renderer: renderer}
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := path.Ext(p)
		if d.IsDir() || !slices.Contains(exts, ext) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		s.topics[name] = Topic{Name: name, Ext: ext, Content: string(data)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load topics: %w", err)
	}
	return s, nil
}

// Get finds a topic. Flag-style names ("--max-depth") also match the
// "option-max-depth" topic.
func (s *Set) Get(name string) (Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if t, ok := s.topics[name]; ok {
		return t, true
	}
	t, ok := s.topics["option-"+name]
	return t, ok
}

// Names returns the topic names, sorted
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.topics))
	for name := range s.topics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Print writes the rendered topic to w
func (s *Set) Print(w io.Writer, t Topic) {
	_, _ = fmt.Fprint(w, s.renderer.Render(t.Content, t.Ext))
}

// PrintList writes the topic index to w
func (s *Set) PrintList(w io.Writer, app string) {
	names := s.Names()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if opt, ok := strings.CutPrefix(name, "option-"); ok {
			options = append(options, "--"+opt)
		} else {
			general = append(general, name)
		}
	}

	_, _ = fmt.Fprintln(w, "Available help topics:")
	for _, group := range []struct {
		title string
		names []string
	}{{"General topics", general}, {"Option topics", options}} {
		if len(group.names) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "\n%s:\n", group.title)
		for _, name := range group.names {
			_, _ = fmt.Fprintf(w, "  %s\n", name)
		}
	}
	_, _ = fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", app)
}

// Install replaces the help command of root with one that also knows the
// topics, and makes `--help <topic>` print topics too.
func (s *Set) Install(root *cobra.Command) {
	originalHelp := root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: "Help provides help for any command or topic in the application.\n\n" +
			"To see all available help topics:\n  " + root.Name() + " help topics",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, s.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				originalHelp(root, nil)
			case args[0] == "topics":
				s.PrintList(out, root.Name())
			default:
				if t, ok := s.Get(args[0]); ok {
					s.Print(out, t)
					return
				}
				target, _, err := root.Find(args)
				if err != nil || target == nil {
					target = root
				}
				originalHelp(target, args)
			}
		},
	}

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.SetHelpCommand(helpCmd)

	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if t, ok := s.Get(args[0]); ok {
				s.Print(cmd.OutOrStdout(), t)
				return
			}
		}
		originalHelp(cmd, args)
	})
}
