package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Categories(ctx context.Context) error
	NewCategory(ctx context.Context) error
	Topics(ctx context.Context, categoryID string) error
	NewTopic(ctx context.Context, categoryID string) error
	DeleteTopic(ctx context.Context, topicID string) error
	Posts(ctx context.Context, topicID string) error
	NewPost(ctx context.Context, topicID string) error
	Show(ctx context.Context, postID string) error
	Edit(ctx context.Context, postID string) error
	Delete(ctx context.Context, postID string) error
	Users(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the eduforum CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("eduforum %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, (c)ategories, newcategory, topics <category-id>, newtopic <category-id>, deltopic <topic-id>, posts <topic-id>, newpost <topic-id>, show <post-id>, edit <post-id>, delete <post-id>, users, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (c)ategories, topics <category-id>, posts <topic-id>, show <post-id>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "c", "categories":
			_ = a.Categories(ctx)

		case "newcategory":
			_ = a.NewCategory(ctx)

		case "topics":
			if len(args) == 0 {
				printlnFn("Usage: topics <category-id>")
				continue
			}
			_ = a.Topics(ctx, args[0])

		case "newtopic":
			if len(args) == 0 {
				printlnFn("Usage: newtopic <category-id>")
				continue
			}
			_ = a.NewTopic(ctx, args[0])

		case "deltopic":
			if len(args) == 0 {
				printlnFn("Usage: deltopic <topic-id>")
				continue
			}
			_ = a.DeleteTopic(ctx, args[0])

		case "posts":
			if len(args) == 0 {
				printlnFn("Usage: posts <topic-id>")
				continue
			}
			_ = a.Posts(ctx, args[0])

		case "newpost":
			if len(args) == 0 {
				printlnFn("Usage: newpost <topic-id>")
				continue
			}
			_ = a.NewPost(ctx, args[0])

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <post-id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <post-id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <post-id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "users":
			_ = a.Users(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
