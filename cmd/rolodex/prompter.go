package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// terminalPrompter implements app.Prompter over stdin/stdout. EOF (Ctrl-D)
// at any prompt cancels the flow.
type terminalPrompter struct {
	in *bufio.Scanner
}

func newTerminalPrompter() *terminalPrompter {
	return &terminalPrompter{in: bufio.NewScanner(os.Stdin)}
}

func (p *terminalPrompter) Prompt(label string) (string, bool) {
	fmt.Printf("%s: ", label)
	if !p.in.Scan() {
		fmt.Println()
		return "", false
	}
	return p.in.Text(), true
}

func (p *terminalPrompter) Confirm(message string) bool {
	fmt.Printf("%s [y/N]: ", message)
	if !p.in.Scan() {
		fmt.Println()
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(p.in.Text()))
	return answer == "y" || answer == "yes"
}

func (p *terminalPrompter) Notify(message string) {
	fmt.Println(message)
}
