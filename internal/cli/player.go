package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerCountCmd())

	return cmd
}

// playerFields binds the flags shared by create and update
type playerFields struct {
	name, title, race, profession, birthday string
	experience                              int
	banned                                  bool
}

func (f *playerFields) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Player name (1-12 characters)")
	cmd.Flags().StringVar(&f.title, "title", "", "Player title (1-30 characters)")
	cmd.Flags().StringVar(&f.race, "race", "", "Race: HUMAN, DWARF, ELF, GIANT, ORC, TROLL, HOBBIT")
	cmd.Flags().StringVar(&f.profession, "profession", "", "Profession: WARRIOR, ROGUE, SORCERER, CLERIC, PALADIN, NAZGUL, WARLOCK, DRUID")
	cmd.Flags().StringVar(&f.birthday, "birthday", "", "Birthday as YYYY-MM-DD, RFC3339 or Unix milliseconds")
	cmd.Flags().IntVar(&f.experience, "experience", 0, "Experience points (0-10000000)")
	cmd.Flags().BoolVar(&f.banned, "banned", false, "Whether the player is banned")
}

// body builds a request containing only the flags the user set
func (f *playerFields) body(cmd *cobra.Command) (map[string]any, error) {
	body := map[string]any{}
	flags := cmd.Flags()

	if flags.Changed("name") {
		body["name"] = f.name
	}
	if flags.Changed("title") {
		body["title"] = f.title
	}
	if flags.Changed("race") {
		body["race"] = strings.ToUpper(f.race)
	}
	if flags.Changed("profession") {
		body["profession"] = strings.ToUpper(f.profession)
	}
	if flags.Changed("birthday") {
		ms, err := parseMillis(f.birthday)
		if err != nil {
			return nil, fmt.Errorf("--birthday: %w", err)
		}
		body["birthday"] = ms
	}
	if flags.Changed("experience") {
		body["experience"] = f.experience
	}
	if flags.Changed("banned") {
		body["banned"] = f.banned
	}
	return body, nil
}

func newPlayerCreateCmd() *cobra.Command {
	var fields playerFields

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := fields.body(cmd)
			if err != nil {
				return err
			}

			var result Player
			if err := client.Post("/api/v1/players", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	fields.register(cmd)
	for _, name := range []string{"name", "title", "race", "profession", "birthday", "experience"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Get(playerPath(args[0]), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newPlayerUpdateCmd() *cobra.Command {
	var fields playerFields

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the given fields of a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := fields.body(cmd)
			if err != nil {
				return err
			}

			var result Player
			if err := client.Patch(playerPath(args[0]), body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	fields.register(cmd)

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Delete(playerPath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			if cfg.Output == FormatJSON {
				out.Print(result)
			} else {
				out.PrintMessage(fmt.Sprintf("Deleted player %s (%d)", result.Name, result.ID))
			}
			return nil
		},
	}
}

// filterFlags binds the list and count filters
type filterFlags struct {
	name, title, race, profession, after, before string
	banned                                       bool
	minExperience, maxExperience                 int
	minLevel, maxLevel                           int
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Name contains (case-sensitive)")
	cmd.Flags().StringVar(&f.title, "title", "", "Title contains (case-sensitive)")
	cmd.Flags().StringVar(&f.race, "race", "", "Race equals")
	cmd.Flags().StringVar(&f.profession, "profession", "", "Profession equals")
	cmd.Flags().StringVar(&f.after, "after", "", "Born on or after (YYYY-MM-DD, RFC3339 or Unix ms)")
	cmd.Flags().StringVar(&f.before, "before", "", "Born on or before (YYYY-MM-DD, RFC3339 or Unix ms)")
	cmd.Flags().BoolVar(&f.banned, "banned", false, "Banned equals")
	cmd.Flags().IntVar(&f.minExperience, "min-experience", 0, "Minimum experience")
	cmd.Flags().IntVar(&f.maxExperience, "max-experience", 0, "Maximum experience")
	cmd.Flags().IntVar(&f.minLevel, "min-level", 0, "Minimum level")
	cmd.Flags().IntVar(&f.maxLevel, "max-level", 0, "Maximum level")
}

// query encodes only the filters the user set
func (f *filterFlags) query(cmd *cobra.Command) (url.Values, error) {
	q := url.Values{}
	flags := cmd.Flags()

	setString := func(flag, param, value string) {
		if flags.Changed(flag) {
			q.Set(param, value)
		}
	}
	setInt := func(flag, param string, value int) {
		if flags.Changed(flag) {
			q.Set(param, strconv.Itoa(value))
		}
	}

	setString("name", "name", f.name)
	setString("title", "title", f.title)
	setString("race", "race", strings.ToUpper(f.race))
	setString("profession", "profession", strings.ToUpper(f.profession))
	for _, bound := range []struct{ flag, value string }{{"after", f.after}, {"before", f.before}} {
		if !flags.Changed(bound.flag) {
			continue
		}
		ms, err := parseMillis(bound.value)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", bound.flag, err)
		}
		q.Set(bound.flag, strconv.FormatInt(ms, 10))
	}
	if flags.Changed("banned") {
		q.Set("banned", strconv.FormatBool(f.banned))
	}
	setInt("min-experience", "minExperience", f.minExperience)
	setInt("max-experience", "maxExperience", f.maxExperience)
	setInt("min-level", "minLevel", f.minLevel)
	setInt("max-level", "maxLevel", f.maxLevel)
	return q, nil
}

func newPlayerListCmd() *cobra.Command {
	var (
		filters    filterFlags
		order      string
		pageNumber int
		pageSize   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := filters.query(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("order") {
				q.Set("order", strings.ToUpper(order))
			}
			if cmd.Flags().Changed("page") {
				q.Set("pageNumber", strconv.Itoa(pageNumber))
			}
			if cmd.Flags().Changed("size") {
				q.Set("pageSize", strconv.Itoa(pageSize))
			}

			var result []Player
			if err := client.Get("/api/v1/players", q, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&order, "order", "ID", "Sort by ID, LEVEL, EXPERIENCE or BIRTHDAY")
	cmd.Flags().IntVar(&pageNumber, "page", 0, "Zero-based page number")
	cmd.Flags().IntVar(&pageSize, "size", 3, "Page size")

	return cmd
}

func newPlayerCountCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count players matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := filters.query(cmd)
			if err != nil {
				return err
			}

			var result CountResult
			if err := client.Get("/api/v1/players/count", q, &result.Count); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	filters.register(cmd)

	return cmd
}

func playerPath(id string) string {
	return "/api/v1/players/" + url.PathEscape(id)
}

// parseMillis accepts a date, an RFC3339 timestamp or Unix milliseconds
func parseMillis(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return ms, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t.UnixMilli(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UnixMilli(), nil
	}
	return 0, fmt.Errorf("cannot parse %q as a date, RFC3339 timestamp or Unix milliseconds", value)
}
