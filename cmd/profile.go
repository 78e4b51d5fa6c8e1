package cmd

import (
	"fmt"
	"os"

	"hsmanager/internal/formatting"
	"hsmanager/internal/profile"
	"hsmanager/internal/shell"
	"hsmanager/pkg/logging"

	"github.com/spf13/cobra"
)

// profileOptions holds the flags of the profile subcommands.
type profileOptions struct {
	root *rootOptions

	output         string
	version        string
	path           string
	args           string
	allowDuplicate bool
}

func newProfileCmd(root *rootOptions) *cobra.Command {
	o := &profileOptions{root: root}

	profileCmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   "Manage server profiles",
		Long: `Manage the stored server profiles without starting the shell.

Examples:
  hsmanager profile                                   # List all profiles
  hsmanager profile list -o json                      # List as JSON
  hsmanager profile show survival                     # Show one profile
  hsmanager profile add survival --version 1.20.1 --path /srv/survival --args "-Xmx4G nogui"
  hsmanager profile edit survival --args "-Xmx8G nogui"
  hsmanager profile remove survival`,
		Args: cobra.NoArgs,
		RunE: o.runList,
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all server profiles",
		Args:    cobra.NoArgs,
		RunE:    o.runList,
	}

	showCmd := &cobra.Command{
		Use:               "show <name>",
		Aliases:           []string{"describe", "get"},
		Short:             "Show one server profile",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: o.completeNames,
		RunE:              o.runShow,
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a server profile",
		Long: `Add a server profile to the end of the list.

Names are expected to be unique. Use --allow-duplicate to store a second
profile with an existing name; lookups always return the first one.`,
		Args: cobra.ExactArgs(1),
		RunE: o.runAdd,
	}

	editCmd := &cobra.Command{
		Use:               "edit <name>",
		Aliases:           []string{"update", "set"},
		Short:             "Change fields of a server profile",
		Long:              `Replace the fields given as flags; fields without a flag keep their value.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: o.completeNames,
		RunE:              o.runEdit,
	}

	removeCmd := &cobra.Command{
		Use:               "remove <name>",
		Aliases:           []string{"rm", "delete"},
		Short:             "Remove a server profile",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: o.completeNames,
		RunE:              o.runRemove,
	}

	for _, c := range []*cobra.Command{profileCmd, listCmd, showCmd} {
		c.Flags().StringVarP(&o.output, "output", "o", string(formatting.FormatTable), "Output format (table, json, yaml, console)")
	}
	for _, c := range []*cobra.Command{addCmd, editCmd} {
		c.Flags().StringVar(&o.version, "version", "", "Server version")
		c.Flags().StringVar(&o.path, "path", "", "Server install path")
		c.Flags().StringVar(&o.args, "args", "", "Server launch arguments")
	}
	addCmd.Flags().BoolVar(&o.allowDuplicate, "allow-duplicate", false, "Add the profile even if the name is already taken")

	profileCmd.AddCommand(listCmd, showCmd, addCmd, editCmd, removeCmd)
	return profileCmd
}

func (o *profileOptions) store() profile.Store {
	return o.root.cfg.ProfileStore()
}

func (o *profileOptions) policy() profile.Option {
	return profile.WithMissingPolicy(o.root.cfg.MissingPolicy())
}

func (o *profileOptions) formatter(cmd *cobra.Command) (formatting.Formatter, error) {
	format, err := formatting.ParseFormat(o.output)
	if err != nil {
		return nil, err
	}
	outFile, _ := cmd.OutOrStdout().(*os.File)
	return formatting.NewFormatter(formatting.Options{
		Format: format,
		Color:  shell.DetectColor(o.root.cfg.Shell.Color, outFile),
	}), nil
}

func (o *profileOptions) runList(cmd *cobra.Command, args []string) error {
	f, err := o.formatter(cmd)
	if err != nil {
		return err
	}

	registry, err := profile.LoadOrEmpty(o.store(), o.policy())
	if err != nil {
		return err
	}

	out, err := f.FormatProfiles(registry.Profiles())
	if err != nil {
		return fmt.Errorf("failed to format profiles: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func (o *profileOptions) runShow(cmd *cobra.Command, args []string) error {
	f, err := o.formatter(cmd)
	if err != nil {
		return err
	}

	registry, err := profile.LoadOrEmpty(o.store(), o.policy())
	if err != nil {
		return err
	}

	p, ok := registry.Lookup(args[0])
	if !ok {
		return &profile.NotFoundError{Name: args[0]}
	}

	out, err := f.FormatProfile(p)
	if err != nil {
		return fmt.Errorf("failed to format profile: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func (o *profileOptions) runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	store := o.store()

	registry, err := profile.LoadOrEmpty(store, o.policy())
	if err != nil {
		return err
	}

	if _, exists := registry.Lookup(name); exists && !o.allowDuplicate {
		return fmt.Errorf("server profile %q already exists (use --allow-duplicate to add it anyway)", name)
	}

	added := profile.New(name, o.version, o.path, o.args)
	if err := added.Validate(); err != nil {
		return err
	}

	registry.Add(added)
	if err := registry.Save(store); err != nil {
		return err
	}

	logging.Info("CLI", "Added profile %s to %s", name, store.Location())
	fmt.Fprintf(cmd.OutOrStdout(), "Server profile %q added.\n", name)
	return nil
}

func (o *profileOptions) runEdit(cmd *cobra.Command, args []string) error {
	name := args[0]
	store := o.store()

	registry, err := profile.Load(store, o.policy())
	if err != nil {
		return err
	}

	updated, ok := registry.Lookup(name)
	if !ok {
		updated = profile.New(name, "", "", "")
	}
	if cmd.Flags().Changed("version") {
		updated.Version = o.version
	}
	if cmd.Flags().Changed("path") {
		updated.Path = o.path
	}
	if cmd.Flags().Changed("args") {
		updated.Args = o.args
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	if err := registry.Edit(updated); err != nil {
		return err
	}
	if err := registry.Save(store); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Server profile %q updated.\n", name)
	return nil
}

func (o *profileOptions) runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	store := o.store()

	registry, err := profile.Load(store, o.policy())
	if err != nil {
		return err
	}

	if err := registry.Remove(name); err != nil {
		return err
	}
	if err := registry.Save(store); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Server profile %q removed.\n", name)
	return nil
}

// completeNames provides shell completion for profile names
func (o *profileOptions) completeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if err := o.root.resolve(cmd); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	registry, err := profile.Load(o.store(), o.policy())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return registry.Names(), cobra.ShellCompDirectiveNoFileComp
}
