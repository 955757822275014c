package console

import "sort"

// Effect tags how a command's output is meant to be presented.
type Effect int

const (
	EffectNone Effect = iota
	EffectTypewriter
)

func (e Effect) String() string {
	switch e {
	case EffectTypewriter:
		return "typewriter"
	default:
		return "none"
	}
}

// Command is a canned response.
type Command struct {
	Name   string
	Lines  []string
	Effect Effect
}

const (
	cmdClear = "clear"
	cmdTheme = "theme"
)

var commands = map[string]Command{
	"help": {
		Name: "help",
		Lines: []string{
			"MLVS-OS COMMAND REFERENCE",
			"-----------------------",
			"help     - Show this help menu",
			"about    - System information",
			"clear    - Clear terminal",
			"contact  - Contact administrator",
			"theme    - Change terminal color",
			"banner   - Display system banner",
			"sudo     - Administrator access",
			"",
			"Press ↑/↓ for command history",
			"",
		},
	},
	"about": {
		Name: "about",
		Lines: []string{
			"RETROSH TERMINAL v1.0",
			"-------------------",
			"Retro-styled terminal interface",
			"Built with Go and Bubble Tea",
			"Simulated CRT display effects",
			"",
			"© 2025 RETROSH",
			"ALL RIGHTS RESERVED",
			"",
		},
	},
	"contact": {
		Name: "contact",
		Lines: []string{
			"SYSTEM ADMINISTRATOR",
			"-------------------",
			"Email: #",
			"BBS: #",
			"FTP: #",
			"",
			"For emergency access:",
			"Dial: #",
			"",
		},
	},
	"sudo": {
		Name: "sudo",
		Lines: []string{
			"┌─[ACCESS DENIED]─┐",
			"│                 │",
			"│ INSUFFICIENT    │",
			"│ PRIVILEGES      │",
			"│                 │",
			"└─────────────────┘",
			"",
		},
	},
	"banner": {
		Name: "banner",
		Lines: []string{
			"╔════════════════════════════════════════════╗",
			"║ ██████╗ ███████╗████████╗██████╗  ██████╗ ║",
			"║ ██╔══██╗██╔════╝╚══██╔══╝██╔══██╗██╔═══██╗║",
			"║ ██████╔╝█████╗     ██║   ██████╔╝██║   ██║║",
			"║ ██╔══██╗██╔══╝     ██║   ██╔══██╗██║   ██║║",
			"║ ██║  ██║███████╗   ██║   ██║  ██║╚██████╔╝║",
			"║ ╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ║",
			"╠════════════════════════════════════════════╣",
			"║         RETROSH TERMINAL EMULATOR          ║",
			"║               v2.1 (2025)                 ║",
			"╚════════════════════════════════════════════╝",
			"",
		},
		Effect: EffectTypewriter,
	},
}

// startup is run once, without input echo, when a console starts.
var startup = []string{"banner", "help"}

// Lookup returns the table entry for an exact command keyword.
func Lookup(name string) (Command, bool) {
	cmd, ok := commands[name]
	if !ok {
		return Command{}, false
	}
	cmd.Lines = append([]string(nil), cmd.Lines...)
	return cmd, true
}

// Commands returns the table entries sorted by name.
func Commands() []Command {
	out := make([]Command, 0, len(commands))
	for name := range commands {
		cmd, _ := Lookup(name)
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
