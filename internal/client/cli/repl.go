package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// commandFunc handles one REPL command; args are the remaining fields of the line.
type commandFunc func(ctx context.Context, args []string) error

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	command(name string) (commandFunc, bool)
}

const helpLoggedOut = "Available commands: login, help, exit"

const helpLoggedIn = `Available commands:
  status | sync | departments
  employees [dept] | show <id> | addemp | editemp <id> | delemp <id>
  attendance [employee] [status] [from] [to] | mark | editatt <id> | delatt <id>
  leaves [status] | addleave | approve <id> | reject <id> | delleave <id>
  stats [today|week|month|last-month|custom] [dept] [from] [to]
  settings | set <key> <value>
  notifications | read <id|all>
  export | import <name> | reset | report <file.xlsx>
  logout | exit
Use "-" to skip an optional positional argument.`

// runREPL starts a simple read–eval–print loop for the HR CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches it. Before login only help, login and exit are
// accepted. The loop exits on EOF or when the user types "exit" or "quit".
//
// Command errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("hrms %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		eof := err != nil

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if eof {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			printErr(a.Login(ctx))

		case "logout":
			printErr(a.Logout(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			fn, ok := a.command(cmd)
			switch {
			case !ok:
				printlnFn("Unknown command:", cmd)
			case !a.isLoggedIn():
				printlnFn("Please login first")
			default:
				printErr(fn(ctx, args))
			}
		}

		if eof {
			return
		}
	}
}

func printErr(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
