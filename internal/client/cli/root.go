package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	user := a.currentUser()
	if user == nil {
		return "(anonymous)"
	}
	return fmt.Sprintf("(%s %s)", user.Username, user.Role)
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the eduforum CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
