// Package cli provides the command-line interface with injectable io.Writer for testing.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/mcdonaldj/gitlink/internal/adapters/browseropen"
	"github.com/mcdonaldj/gitlink/internal/adapters/clip"
	"github.com/mcdonaldj/gitlink/internal/adapters/execgit"
	"github.com/mcdonaldj/gitlink/internal/adapters/osfs"
	"github.com/mcdonaldj/gitlink/internal/config"
	"github.com/mcdonaldj/gitlink/internal/ports"
	"github.com/mcdonaldj/gitlink/internal/resolve"
)

// ConfigService provides configuration operations for the CLI.
type ConfigService interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
	ConfigPath() string
	DefaultConfig() *config.Config
}

// CLI represents the command-line interface with injectable dependencies.
type CLI struct {
	Out     io.Writer // Standard output
	Err     io.Writer // Standard error
	Version string    // Application version
	Args    []string  // Command arguments (like os.Args)

	// Exit function for testability (defaults to os.Exit)
	Exit func(code int)

	// Injectable dependencies (nil means use defaults)
	ConfigSvc ConfigService
	Git       ports.GitClient
	FS        ports.FileSystem
	Opener    ports.URLOpener
	Clip      ports.Clipboard

	// Color functions (can be disabled for testing)
	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	cyan   func(a ...interface{}) string
	gray   func(a ...interface{}) string
	red    func(a ...interface{}) string
}

// New creates a new CLI with default settings.
func New(version string) *CLI {
	return &CLI{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Version: version,
		Args:    os.Args,
		Exit:    os.Exit,
		green:   color.New(color.FgGreen, color.Bold).SprintFunc(),
		yellow:  color.New(color.FgYellow).SprintFunc(),
		cyan:    color.New(color.FgCyan).SprintFunc(),
		gray:    color.New(color.FgHiBlack).SprintFunc(),
		red:     color.New(color.FgRed).SprintFunc(),
	}
}

// NewForTesting creates a CLI configured for testing (no colors, captured output).
func NewForTesting(out, errOut io.Writer, args []string) *CLI {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	exitCode := 0
	return &CLI{
		Out:     out,
		Err:     errOut,
		Version: "test",
		Args:    args,
		Exit:    func(code int) { exitCode = code; _ = exitCode },
		green:   noColor,
		yellow:  noColor,
		cyan:    noColor,
		gray:    noColor,
		red:     noColor,
	}
}

// defaultConfigService wraps the config package functions.
type defaultConfigService struct{}

func (d *defaultConfigService) Load() (*config.Config, error) { return config.Load() }
func (d *defaultConfigService) Save(cfg *config.Config) error { return cfg.Save() }
func (d *defaultConfigService) ConfigPath() string            { return config.ConfigPath() }
func (d *defaultConfigService) DefaultConfig() *config.Config { return config.DefaultConfig() }

func (c *CLI) configSvc() ConfigService {
	if c.ConfigSvc != nil {
		return c.ConfigSvc
	}
	return &defaultConfigService{}
}

func (c *CLI) git() ports.GitClient {
	if c.Git != nil {
		return c.Git
	}
	return execgit.New()
}

func (c *CLI) fs() ports.FileSystem {
	if c.FS != nil {
		return c.FS
	}
	return osfs.New()
}

func (c *CLI) opener() ports.URLOpener {
	if c.Opener != nil {
		return c.Opener
	}
	return browseropen.New()
}

func (c *CLI) clipboard() ports.Clipboard {
	if c.Clip != nil {
		return c.Clip
	}
	return clip.New()
}

// notifier adapts the CLI's writers to ports.Notifier.
type notifier struct {
	c *CLI
}

func (n notifier) Info(msg string) {
	fmt.Fprintf(n.c.Out, "%s %s\n", n.c.gray("i"), n.c.gray(msg))
}

func (n notifier) Error(msg string) {
	fmt.Fprintf(n.c.Err, "%s %s\n", n.c.red("x"), msg)
}

// Run executes the CLI with the configured arguments.
func (c *CLI) Run() {
	if len(c.Args) < 2 {
		fmt.Fprintln(c.Out, "No command specified. Use 'gitlink help' for usage.")
		return
	}

	switch c.Args[1] {
	case "url":
		c.RunLink(modePrint)
	case "open":
		c.RunLink(modeOpen)
	case "copy":
		c.RunLink(modeCopy)
	case "status":
		c.ShowStatus()
	case "init":
		c.InitConfig()
	case "version", "-v", "--version":
		fmt.Fprintf(c.Out, "gitlink v%s\n", c.Version)
	case "help", "-h", "--help":
		c.PrintUsage()
	default:
		fmt.Fprintf(c.Err, "Unknown command: %s\n", c.Args[1])
		c.PrintUsage()
		c.Exit(1)
	}
}

// PrintUsage prints the help message.
func (c *CLI) PrintUsage() {
	fmt.Fprintln(c.Out, `gitlink - Shareable web URLs for files in git repositories

Usage:
  gitlink                        Launch interactive picker
  gitlink url <file> [flags]     Print the resolved URL
  gitlink open <file> [flags]    Open the resolved URL in the browser
  gitlink copy <file> [flags]    Copy the resolved URL to the clipboard
  gitlink status                 Show repository facts (root, remotes, ref, tag)
  gitlink init                   Create default config file
  gitlink version, -v            Show version
  gitlink help, -h               Show this help

Flags for url/open/copy:
  --ref <kind>       Pin kind: branch, tag, commit, or root (config default: commit)
  --commit <hash>    Explicit commit (implies --ref commit)
  --branch <name>    Explicit branch (implies --ref branch)
  --tag <name>       Explicit tag (implies --ref tag)
  --remote <name>    Remote to link against (default: configured, else first)
  --lines N | N-M    Line or inclusive line range to anchor (1-based)

Config: ~/.gitlink/config.yaml`)
}

type linkMode int

const (
	modePrint linkMode = iota
	modeOpen
	modeCopy
)

// RunLink resolves a URL and prints, opens, or copies it.
func (c *CLI) RunLink(mode linkMode) {
	req, err := parseLinkArgs(c.Args[2:])
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}

	cfg, err := c.configSvc().Load()
	if err != nil {
		fmt.Fprintf(c.Err, "Error loading config: %v\n", err)
		c.Exit(1)
		return
	}

	n := notifier{c}
	resolver := resolve.New(c.git(), c.fs(), n, cfg)
	res, err := resolver.Resolve(req)
	if err != nil {
		n.Error(err.Error())
		c.Exit(1)
		return
	}

	switch mode {
	case modeOpen:
		if err := c.opener().Open(res.URL, cfg.OpenCmd); err != nil {
			n.Error(fmt.Sprintf("opening %s: %v", res.URL, err))
			c.Exit(1)
			return
		}
		fmt.Fprintf(c.Out, "%s Opened %s\n", c.green("*"), c.cyan(res.URL))
	case modeCopy:
		if err := c.clipboard().WriteText(res.URL); err != nil {
			n.Error(fmt.Sprintf("copying to clipboard: %v", err))
			c.Exit(1)
			return
		}
		fmt.Fprintf(c.Out, "%s Copied %s\n", c.green("*"), c.cyan(res.URL))
	default:
		fmt.Fprintln(c.Out, res.URL)
	}
}

// parseLinkArgs hand-parses the url/open/copy argument list into a request.
// Flags accept both "--flag value" and "--flag=value".
func parseLinkArgs(args []string) (resolve.Request, error) {
	var req resolve.Request

	next := func(i *int, name, inline string) (string, error) {
		if inline != "" {
			return inline, nil
		}
		*i++
		if *i >= len(args) {
			return "", fmt.Errorf("flag %s needs a value", name)
		}
		return args[*i], nil
	}

	// Each of --ref/--commit/--branch/--tag implies a pin kind; two flags
	// implying different kinds is a contradiction, not a precedence.
	pinFlag := ""
	setPin := func(kind resolve.PinKind, flag string) error {
		if pinFlag != "" && req.Pin != kind {
			return fmt.Errorf("conflicting flags: %s implies pin %s but %s already set pin %s",
				flag, kind, pinFlag, req.Pin)
		}
		req.Pin = kind
		if pinFlag == "" {
			pinFlag = flag
		}
		return nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			if req.File != "" {
				return req, fmt.Errorf("unexpected argument %q", arg)
			}
			req.File = arg
			continue
		}

		name := arg
		inline := ""
		if eq := strings.Index(arg, "="); eq >= 0 {
			name, inline = arg[:eq], arg[eq+1:]
		}

		var err error
		switch name {
		case "--ref", "-r":
			var v string
			if v, err = next(&i, name, inline); err == nil {
				var kind resolve.PinKind
				if kind, err = resolve.ParsePinKind(v); err == nil {
					err = setPin(kind, name)
				}
			}
		case "--commit":
			if req.Commit, err = next(&i, name, inline); err == nil {
				err = setPin(resolve.PinCommit, name)
			}
		case "--branch":
			if req.Branch, err = next(&i, name, inline); err == nil {
				err = setPin(resolve.PinBranch, name)
			}
		case "--tag":
			if req.Tag, err = next(&i, name, inline); err == nil {
				err = setPin(resolve.PinTag, name)
			}
		case "--remote":
			req.Remote, err = next(&i, name, inline)
		case "--lines", "-L":
			var v string
			if v, err = next(&i, name, inline); err == nil {
				req.Lines, err = resolve.ParseLineRange(v)
			}
		default:
			err = fmt.Errorf("unknown flag %s", name)
		}
		if err != nil {
			return req, err
		}
	}

	return req, nil
}

// ShowStatus shows repository facts for the current directory.
func (c *CLI) ShowStatus() {
	git := c.git()

	wd, err := c.fs().Getwd()
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}

	root, err := git.FindRoot(wd)
	if err != nil {
		fmt.Fprintf(c.Err, "Error: %v\n", err)
		c.Exit(1)
		return
	}

	fmt.Fprintln(c.Out, "gitlink status:")
	fmt.Fprintf(c.Out, "  Root:    %s\n", root)

	if head, err := git.CurrentRef(root); err == nil {
		if head.Branch {
			fmt.Fprintf(c.Out, "  Ref:     %s %s\n", c.green(head.Value), c.gray("(branch)"))
		} else {
			fmt.Fprintf(c.Out, "  Ref:     %s %s\n", c.yellow(head.Value), c.gray("(detached)"))
		}
	}

	if tag, err := git.LatestTag(root); err == nil {
		fmt.Fprintf(c.Out, "  Tag:     %s\n", tag)
	} else {
		fmt.Fprintf(c.Out, "  Tag:     %s\n", c.gray("none"))
	}

	remotes, err := git.Remotes(root)
	if err != nil || len(remotes) == 0 {
		fmt.Fprintf(c.Out, "  Remotes: %s\n", c.gray("none"))
		return
	}
	fmt.Fprintln(c.Out, "  Remotes:")
	for _, name := range remotes {
		url, err := git.RemoteURL(root, name)
		if err != nil {
			url = c.gray("(no url)")
		}
		fmt.Fprintf(c.Out, "    %s %s\n", c.cyan(name), url)
	}
}

// InitConfig creates the default config file.
func (c *CLI) InitConfig() {
	svc := c.configSvc()
	cfg := svc.DefaultConfig()
	if err := svc.Save(cfg); err != nil {
		fmt.Fprintf(c.Err, "Error saving config: %v\n", err)
		c.Exit(1)
		return
	}
	fmt.Fprintf(c.Out, "Created config at %s\n", svc.ConfigPath())
}
