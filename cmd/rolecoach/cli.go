package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/nmtri/rolecoach/internal/config"
	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/gemini"
	"github.com/nmtri/rolecoach/internal/ops"
	"github.com/nmtri/rolecoach/internal/persona"
	"github.com/nmtri/rolecoach/internal/prompt"
	"github.com/nmtri/rolecoach/internal/session"
	"github.com/nmtri/rolecoach/internal/store"
	"github.com/nmtri/rolecoach/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(st *store.Store, cfg *config.Config, baseDir string) *cli.App {
	app := &cli.App{
		Name:    "rolecoach",
		Usage:   "Insurance sales roleplay coach",
		Version: Version,
		Commands: []*cli.Command{
			advisorCmd(st, baseDir),
			personaCmd(st, cfg),
			promptCmd(st, cfg, baseDir),
			keyCmd(st, cfg),
			sessionCmd(st, cfg, baseDir),
			reviewCmd(st, cfg),
			flowsCmd(),
			webCmd(st, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// advisorCmd creates the advisor command group.
func advisorCmd(st *store.Store, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "advisor",
		Usage: "Manage the advisor (TVV) profile",
		Subcommands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Store the advisor profile, replacing any existing one",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Display name"},
					&cli.StringFlag{Name: "gender", Usage: "Gender"},
					&cli.StringFlag{Name: "age", Usage: "Age"},
					&cli.IntFlag{Name: "experience-months", Usage: "Sales experience in months"},
					&cli.StringFlag{Name: "personality", Usage: "Self-described personality"},
					&cli.StringFlag{Name: "strengths", Usage: "Self-assessed strengths"},
					&cli.StringFlag{Name: "improvements", Usage: "Areas to improve"},
				},
				Action: func(c *cli.Context) error {
					output, err := ops.AdvisorSet(st, ops.AdvisorSetInput{Profile: persona.Advisor{
						Name:             c.String("name"),
						Gender:           c.String("gender"),
						Age:              c.String("age"),
						ExperienceMonths: c.Int("experience-months"),
						Personality:      c.String("personality"),
						Strengths:        c.String("strengths"),
						Improvements:     c.String("improvements"),
					}})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:  "show",
				Usage: "Show the stored advisor profile",
				Action: func(c *cli.Context) error {
					output, err := ops.AdvisorGet(st)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:  "export",
				Usage: "Export the advisor profile to a JSON file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Output path (default: exports dir)"},
				},
				Action: func(c *cli.Context) error {
					output, err := ops.ExportProfile(st, baseDir, ops.ExportProfileInput{Path: c.String("path")})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:      "import",
				Usage:     "Import an advisor profile from an export file",
				ArgsUsage: "<path>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("path argument is required"))
					}
					output, err := ops.ImportProfile(st, ops.ImportProfileInput{Path: c.Args().First()})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
		},
	}
}

// personaCmd creates the persona command group.
func personaCmd(st *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "persona",
		Usage: "AI-assisted customer persona generation",
		Subcommands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Expand a free-text customer sketch into a full persona",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Required: true, Usage: "Free-text customer sketch"},
					&cli.StringFlag{Name: "segment", Aliases: []string{"s"}, Value: "mass_market", Usage: "Segment: mass_market|hnw"},
					&cli.StringFlag{Name: "flow", Aliases: []string{"f"}, Value: "new_customer", Usage: "Flow: new_customer|ecm"},
				},
				Action: func(c *cli.Context) error {
					gen, err := gemini.New(c.Context, st.APIKey(), cfg)
					if err != nil {
						return outputError(err)
					}
					output, err := ops.GeneratePersona(c.Context, gen, ops.GeneratePersonaInput{
						Description: c.String("description"),
						Segment:     flows.Segment(c.String("segment")),
						FlowType:    flows.FlowType(c.String("flow")),
					})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
		},
	}
}

// promptCmd creates the prompt command group.
func promptCmd(st *store.Store, cfg *config.Config, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "Generate and manage roleplay context prompts",
		Subcommands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Assemble a context prompt (reads customer JSON from stdin)",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "flow", Aliases: []string{"f"}, Value: "new_customer", Usage: "Flow: new_customer|ecm"},
					&cli.StringFlag{Name: "segment", Aliases: []string{"s"}, Value: "mass_market", Usage: "Segment: mass_market|hnw"},
					&cli.StringFlag{Name: "stages", Usage: "Comma-separated stage IDs (empty = all)"},
					&cli.BoolFlag{Name: "text", Usage: "Print the prompt text instead of JSON"},
				},
				Action: func(c *cli.Context) error {
					customer, err := readCustomer()
					if err != nil {
						return outputError(err)
					}
					output, err := ops.GeneratePrompt(st, cfg, ops.GeneratePromptInput{
						Customer:       customer,
						FlowType:       flows.FlowType(c.String("flow")),
						Segment:        flows.Segment(c.String("segment")),
						SelectedStages: splitList(c.String("stages")),
					})
					if err != nil {
						return outputError(err)
					}
					if c.Bool("text") {
						fmt.Println(output.Entry.Prompt)
						return nil
					}
					return outputJSON(output)
				},
			},
			{
				Name:  "list",
				Usage: "List the generated-prompt history, newest first",
				Action: func(c *cli.Context) error {
					output, err := ops.ListPrompts(st)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:      "show",
				Usage:     "Print one generated prompt's text",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("id argument is required"))
					}
					entry := ops.FindPrompt(st, c.Args().First())
					if entry == nil {
						return outputError(errors.NewNotFound(c.Args().First()))
					}
					fmt.Println(entry.Prompt)
					return nil
				},
			},
			{
				Name:      "export",
				Usage:     "Export one generated prompt to a JSON file",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Output path (default: exports dir)"},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("id argument is required"))
					}
					output, err := ops.ExportPrompt(st, baseDir, ops.ExportPromptInput{
						ID:   c.Args().First(),
						Path: c.String("path"),
					})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
		},
	}
}

// keyCmd creates the key command group.
func keyCmd(st *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "key",
		Usage: "Manage the Gemini API key",
		Subcommands: []*cli.Command{
			{
				Name:      "set",
				Usage:     "Store the API key",
				ArgsUsage: "<key>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "validate", Usage: "Probe the API before storing"},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("key argument is required"))
					}
					key := c.Args().First()
					if c.Bool("validate") {
						client, err := gemini.New(c.Context, key, cfg)
						if err != nil {
							return outputError(err)
						}
						if err := client.ValidateKey(c.Context); err != nil {
							return outputError(err)
						}
					}
					st.SetAPIKey(key)
					return outputJSON(map[string]any{"stored": true, "validated": c.Bool("validate")})
				},
			},
			{
				Name:  "show",
				Usage: "Show whether an API key is stored (masked)",
				Action: func(c *cli.Context) error {
					key := st.APIKey()
					if key == "" {
						return outputJSON(map[string]any{"stored": false})
					}
					return outputJSON(map[string]any{"stored": true, "key": maskKey(key)})
				},
			},
			{
				Name:  "remove",
				Usage: "Remove the stored API key",
				Action: func(c *cli.Context) error {
					st.RemoveAPIKey()
					return outputJSON(map[string]any{"removed": true})
				},
			},
		},
	}
}

// sessionCmd creates the session command group.
func sessionCmd(st *store.Store, cfg *config.Config, baseDir string) *cli.Command {
	return &cli.Command{
		Name:  "session",
		Usage: "Interactive roleplay practice sessions",
		Subcommands: []*cli.Command{
			{
				Name:  "start",
				Usage: "Start an interactive roleplay session",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Required: true, Usage: "Path to a customer persona JSON file"},
					&cli.StringFlag{Name: "flow", Aliases: []string{"f"}, Value: "new_customer", Usage: "Flow: new_customer|ecm"},
					&cli.StringFlag{Name: "segment", Aliases: []string{"s"}, Value: "mass_market", Usage: "Segment: mass_market|hnw"},
				},
				Action: func(c *cli.Context) error {
					customer, err := readCustomerFile(c.String("file"))
					if err != nil {
						return outputError(err)
					}
					gw, err := gemini.New(c.Context, st.APIKey(), cfg)
					if err != nil {
						return outputError(err)
					}
					m := session.NewManager(st, gw)
					sess, err := m.Start(c.Context, customer, flows.FlowType(c.String("flow")), flows.Segment(c.String("segment")))
					if err != nil {
						return outputError(err)
					}
					fmt.Printf("Phiên %s đã bắt đầu. Gõ /help để xem lệnh.\n\n", sess.ID)
					fmt.Printf("%s: %s\n", customerLabel(sess), prompt.InitialGreeting(sess.Customer))
					return runSessionLoop(c.Context, st, m)
				},
			},
			{
				Name:  "resume",
				Usage: "Resume the interrupted session, if any",
				Action: func(c *cli.Context) error {
					gw, err := gemini.New(c.Context, st.APIKey(), cfg)
					if err != nil {
						return outputError(err)
					}
					m := session.NewManager(st, gw)
					sess := m.Resume()
					if sess == nil {
						return outputError(errors.NewNoActiveSession())
					}
					fmt.Printf("Tiếp tục phiên %s (%d lượt thoại). Khách hàng sẽ không nhớ hội thoại cũ.\n\n", sess.ID, len(sess.Messages))
					return runSessionLoop(c.Context, st, m)
				},
			},
			{
				Name:  "list",
				Usage: "List archived sessions, newest first",
				Action: func(c *cli.Context) error {
					output, err := ops.SessionList(st)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:      "show",
				Usage:     "Show one archived session with its transcript",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("id argument is required"))
					}
					sess := session.Find(st, c.Args().First())
					if sess == nil {
						return outputError(errors.NewNotFound(c.Args().First()))
					}
					return outputJSON(sess)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete an archived session",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("id argument is required"))
					}
					output, err := ops.SessionDelete(st, ops.SessionDeleteInput{ID: c.Args().First()})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:      "note",
				Usage:     "Attach a self-assessment note to a session",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Required: true, Usage: "Note text (empty clears)"},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("id argument is required"))
					}
					output, err := ops.SaveNote(st, ops.SaveNoteInput{ID: c.Args().First(), Note: c.String("text")})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:      "export",
				Usage:     "Export a session as a markdown transcript",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Output path (default: exports dir)"},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() < 1 {
						return outputError(errors.NewInvalidRequest("id argument is required"))
					}
					output, err := ops.ExportSession(st, baseDir, ops.ExportSessionInput{
						ID:   c.Args().First(),
						Path: c.String("path"),
					})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
		},
	}
}

// reviewCmd creates the review command.
func reviewCmd(st *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "review",
		Usage: "AI review of a practice transcript (session ID or stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "session", Usage: "Archived session ID to review"},
		},
		Action: func(c *cli.Context) error {
			input := ops.ReviewInput{SessionID: c.String("session")}
			if input.SessionID == "" {
				if !stdinHasData() {
					return outputError(errors.NewInvalidRequest("pipe a transcript via stdin or pass --session"))
				}
				transcript, err := readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				input.Transcript = transcript
			}
			gen, err := gemini.New(c.Context, st.APIKey(), cfg)
			if err != nil {
				return outputError(err)
			}
			output, err := ops.Review(c.Context, gen, st, input)
			if err != nil {
				return outputError(err)
			}
			fmt.Println(output.Review)
			return nil
		},
	}
}

// flowsCmd creates the flows command.
func flowsCmd() *cli.Command {
	return &cli.Command{
		Name:  "flows",
		Usage: "List consulting flow stages",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "flow", Aliases: []string{"f"}, Value: "new_customer", Usage: "Flow: new_customer|ecm"},
		},
		Action: func(c *cli.Context) error {
			flowType := flows.FlowType(c.String("flow"))
			return outputJSON(map[string]any{
				"flowType": flowType,
				"stages":   flows.StagesFor(flowType),
			})
		},
	}
}

// webCmd creates the web command.
func webCmd(st *store.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the history web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Value: 8497, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(st, cfg, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// runSessionLoop drives the interactive roleplay REPL until /end or /cancel.
func runSessionLoop(ctx context.Context, st *store.Store, m *session.Manager) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "/help":
			printSessionHelp()
		case line == "/cancel":
			m.Cancel()
			fmt.Println("Đã hủy phiên.")
			return nil
		case strings.HasPrefix(line, "/end"):
			note := strings.TrimSpace(strings.TrimPrefix(line, "/end"))
			sess, err := m.End(note)
			if err != nil {
				return outputError(err)
			}
			fmt.Printf("Đã lưu phiên %s (%d lượt thoại).\n", sess.ID, len(sess.Messages))
			return nil
		case strings.HasPrefix(line, "/stage"):
			arg := strings.TrimSpace(strings.TrimPrefix(line, "/stage"))
			index, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Println("Cách dùng: /stage <số thứ tự giai đoạn, bắt đầu từ 0>")
				break
			}
			m.SetStage(index)
			printStageHint(m.Current())
		default:
			reply, err := m.Send(ctx, line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Lỗi: %v\n", err)
				break
			}
			fmt.Printf("%s: %s\n", customerLabel(m.Current()), reply)
		}
		fmt.Print("> ")
	}
	if err := scanner.Err(); err != nil {
		return outputError(errors.NewInternal(err))
	}
	// stdin closed mid-session; the current slot keeps it resumable
	fmt.Println("\nPhiên tạm dừng. Dùng 'rolecoach session resume' để tiếp tục.")
	return nil
}

func printSessionHelp() {
	fmt.Println(`Lệnh trong phiên:
  /stage <n>   chuyển giai đoạn tư vấn (0-based)
  /end [ghi chú]  kết thúc và lưu phiên
  /cancel      hủy phiên, không lưu
  /help        hiện trợ giúp này`)
}

func printStageHint(sess *session.Session) {
	if sess == nil {
		return
	}
	stages := flows.StagesFor(sess.FlowType)
	if sess.CurrentStage < 0 || sess.CurrentStage >= len(stages) {
		return
	}
	stage := stages[sess.CurrentStage]
	fmt.Printf("Giai đoạn: %s\n", stage.Name)
	if hint, ok := flows.TransitionHints[stage.ID]; ok {
		fmt.Printf("Gợi ý: %s\n", hint)
	}
}

func customerLabel(sess *session.Session) string {
	if sess != nil && sess.Customer != nil && sess.Customer.HasName() {
		return sess.Customer.DisplayName()
	}
	return "Khách hàng"
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if cErr, ok := err.(*errors.CoachError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", cErr.Code, cErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// readCustomer decodes a customer persona from piped stdin JSON.
func readCustomer() (*persona.Customer, error) {
	if !stdinHasData() {
		return nil, errors.NewInvalidRequest("customer JSON must be piped via stdin")
	}
	text, err := readStdin()
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	var customer persona.Customer
	if err := json.Unmarshal([]byte(text), &customer); err != nil {
		return nil, errors.NewInvalidRequest("invalid customer JSON: " + err.Error())
	}
	return &customer, nil
}

// readCustomerFile decodes a customer persona from a JSON file.
func readCustomerFile(path string) (*persona.Customer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewInvalidRequest("cannot read customer file: " + err.Error())
	}
	var customer persona.Customer
	if err := json.Unmarshal(data, &customer); err != nil {
		return nil, errors.NewInvalidRequest("invalid customer JSON: " + err.Error())
	}
	return &customer, nil
}

// splitList splits a comma-separated string into trimmed items.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			items = append(items, t)
		}
	}
	return items
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
